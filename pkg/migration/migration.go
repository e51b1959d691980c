package migration

import (
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"path"
	"strconv"
)

const defaultSource = "file://migrations"

// MigrateCommand returns the "migrate" command tree over the mysql dsn.
// The database and file source drivers must be imported by the caller.
func MigrateCommand(dsn string) *cobra.Command {
	root := &cobra.Command{
		Use:   "migrate",
		Short: "database migration",
	}
	root.AddCommand(
		upCommand(dsn),
		downCommand(dsn),
		versionCommand(dsn),
		forceCommand(dsn),
	)
	return root
}

func newMigrate(dsn string) (*migrate.Migrate, error) {
	m, err := migrate.New(defaultSource, "mysql://"+dsn)
	if err != nil {
		return nil, fmt.Errorf("migrate.New: %w", err)
	}
	return m, nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		fmt.Println("[ERROR] close source:", srcErr)
	}
	if dbErr != nil {
		fmt.Println("[ERROR] close database:", dbErr)
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("No change")
		return nil
	}
	return err
}

func upCommand(dsn string) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "apply all up migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMigrate(dsn)
			if err != nil {
				return err
			}
			defer closeMigrate(m)
			return ignoreNoChange(m.Up())
		},
	}
}

func downCommand(dsn string) *cobra.Command {
	return &cobra.Command{
		Use:   "down [steps]",
		Short: "roll back migrations, one step by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid steps: %q", args[0])
				}
				steps = n
			}

			m, err := newMigrate(dsn)
			if err != nil {
				return err
			}
			defer closeMigrate(m)
			return ignoreNoChange(m.Steps(-steps))
		},
	}
}

func versionCommand(dsn string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMigrate(dsn)
			if err != nil {
				return err
			}
			defer closeMigrate(m)

			version, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Println("Version: none")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println("Version:", version, "Dirty:", dirty)
			return nil
		},
	}
}

func forceCommand(dsn string) *cobra.Command {
	return &cobra.Command{
		Use:   "force [version]",
		Short: "set version without running migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version: %q", args[0])
			}

			m, err := newMigrate(dsn)
			if err != nil {
				return err
			}
			defer closeMigrate(m)
			return m.Force(version)
		},
	}
}

// MigrateUpForTesting drops everything then applies all migrations found under rootDir
func MigrateUpForTesting(rootDir string, dsn string) {
	m, err := migrate.New("file://"+path.Join(rootDir, "migrations"), "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	defer closeMigrate(m)

	err = m.Drop()
	if err != nil {
		panic(err)
	}

	// Drop removes the migration table too, so a fresh instance is needed
	m2, err := migrate.New("file://"+path.Join(rootDir, "migrations"), "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	defer closeMigrate(m2)

	err = ignoreNoChange(m2.Up())
	if err != nil {
		panic(err)
	}
}
