package main

import (
	"context"
	"fmt"
	"github.com/QuangTung97/booth-ads/config"
	"github.com/QuangTung97/booth-ads/model"
	"github.com/QuangTung97/booth-ads/pkg/adcache"
	"github.com/QuangTung97/booth-ads/pkg/cacheclient"
	"github.com/QuangTung97/booth-ads/pkg/memtable"
	"github.com/QuangTung97/booth-ads/repository"
	"github.com/QuangTung97/booth-ads/service/gallery"
	"github.com/QuangTung97/booth-ads/service/management"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"sort"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchGalleryCommand(),
		seedDataCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

type dbOnlyStore struct {
}

func (dbOnlyStore) Get(ctx context.Context, _ string, load adcache.Loader) ([]byte, error) {
	return load(ctx)
}

func (dbOnlyStore) Invalidate(context.Context, string) error {
	return nil
}

func venueIDOf(i int) string {
	return fmt.Sprintf("VENUE%03d", i)
}

type benchParams struct {
	dbOnly      bool
	numThreads  int
	numRequests int
	numVenues   int
}

func newStore(conf config.Config, dbOnly bool) adcache.Store {
	if dbOnly {
		return dbOnlyStore{}
	}

	fmt.Println("NUM CONNS:", conf.Memcache.Conns())
	fmt.Println("MEMCACHE ADDR:", conf.Memcache.Addr())

	client, err := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.Conns())
	if err != nil {
		panic(err)
	}
	return adcache.NewStore(memtable.New(conf.Cache.LocalSize), client,
		adcache.WithTTL(conf.Cache.TTLSeconds),
		adcache.WithLocalTTL(conf.Cache.LocalTTLSeconds),
	)
}

func benchGallery(params benchParams) {
	conf := config.Load()
	fmt.Println("DBONLY:", params.dbOnly)
	if params.numVenues <= 0 {
		params.numVenues = 1
	}

	loc, err := conf.Location()
	if err != nil {
		panic(err)
	}

	db := conf.MySQL.MustConnect(zap.NewNop())
	provider := repository.NewProvider(db)

	service := gallery.NewService(
		provider, repository.NewAdvertisement(), newStore(conf, params.dbOnly),
		gallery.NewMetrics(prometheus.NewRegistry()), loc,
	)

	durations := make([][]time.Duration, params.numThreads)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(params.numThreads)
	for th := 0; th < params.numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < params.numRequests; i++ {
				venueID := venueIDOf((threadIndex + i) % params.numVenues)

				start := time.Now()
				output := service.GetActiveAds(context.Background(), venueID)
				if output.Banner == nil && output.Fullscreen == nil {
					fmt.Println("NO ADS:", venueID)
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	printPercentiles(durations)
}

func printPercentiles(durations [][]time.Duration) {
	var history []time.Duration

	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}
	numHistory := len(history)
	if numHistory == 0 {
		return
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	fmt.Println("P50:", history[numHistory*50/100])
	fmt.Println("P90:", history[numHistory*90/100])
	fmt.Println("P95:", history[numHistory*95/100])
	fmt.Println("P99:", history[numHistory*99/100])
	fmt.Println("P999:", history[numHistory*999/1000])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("HISTORY LEN:", numHistory)

	fmt.Println("AVG:", total/time.Duration(numHistory))
}

func benchGalleryCommand() *cobra.Command {
	var params benchParams

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "benchmark the gallery read path",
		Run: func(cmd *cobra.Command, args []string) {
			benchGallery(params)
		},
	}

	cmd.Flags().BoolVar(&params.dbOnly, "db-only", false, "read from mysql without the cache")
	cmd.Flags().IntVar(&params.numThreads, "threads", 50, "number of goroutines")
	cmd.Flags().IntVar(&params.numRequests, "requests", 2000, "requests per goroutine")
	cmd.Flags().IntVar(&params.numVenues, "venues", 10, "number of seeded venues")
	return cmd
}

func seedDataCommand() *cobra.Command {
	var numVenues int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "insert one active banner and one active fullscreen ad per venue",
		Run: func(cmd *cobra.Command, args []string) {
			conf := config.Load()
			loc, err := conf.Location()
			if err != nil {
				panic(err)
			}

			db := conf.MySQL.MustConnect(zap.NewNop())
			service := management.NewService(
				repository.NewProvider(db), repository.NewAdvertisement(), dbOnlyStore{},
				management.NewMetrics(prometheus.NewRegistry()), loc,
			)

			today := time.Now().In(loc).Format("2006-01-02")
			for i := 0; i < numVenues; i++ {
				for _, size := range []model.AdsSize{model.AdsSizeBanner, model.AdsSizeFullscreen} {
					_, err := service.Create(context.Background(), management.AdRequest{
						VenueID:      venueIDOf(i),
						CampaignName: fmt.Sprintf("Bench %s %d", size, i),
						MediaURL:     fmt.Sprintf("https://cdn.example.com/bench/%d.png", i),
						AdsSize:      size,
						StartDate:    today,
					})
					if err != nil {
						fmt.Println("SEED:", venueIDOf(i), size, err)
					}
				}
			}
		},
	}

	cmd.Flags().IntVar(&numVenues, "venues", 10, "number of venues")
	return cmd
}
