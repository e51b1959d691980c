package cacheclient

import (
	"github.com/QuangTung97/booth-ads/pkg/adcache"
	"github.com/QuangTung97/go-memcache/memcache"
	"time"
)

// Client ...
type Client struct {
	client *memcache.Client
}

// Pipeline ...
type Pipeline struct {
	pipe *memcache.Pipeline
}

var _ adcache.CacheClient = &Client{}

var _ adcache.CachePipeline = Pipeline{}

// leaseTimeoutSeconds is how long memcached keeps a granted lease before another client may win it
const leaseTimeoutSeconds = 5

// New ...
func New(addr string, numConns int) (*Client, error) {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		return nil, err
	}
	return &Client{
		client: client,
	}, nil
}

// UnsafeFlushAll ...
func (c *Client) UnsafeFlushAll() error {
	p := c.client.Pipeline()
	defer p.Finish()
	return p.FlushAll()()
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// Pipeline ...
func (c *Client) Pipeline() adcache.CachePipeline {
	return Pipeline{
		pipe: c.client.Pipeline(),
	}
}

// LeaseGet ...
func (p Pipeline) LeaseGet(key string) func() (adcache.LeaseGetOutput, error) {
	fn := p.pipe.MGet(key, memcache.MGetOptions{
		N:   leaseTimeoutSeconds,
		CAS: true,
	})
	return func() (adcache.LeaseGetOutput, error) {
		resp, err := fn()
		if err != nil {
			return adcache.LeaseGetOutput{}, err
		}
		if resp.Type != memcache.MGetResponseTypeVA || resp.Flags&memcache.MGetFlagZ != 0 {
			return adcache.LeaseGetOutput{
				Type: adcache.LeaseGetTypeRejected,
			}, nil
		}

		if resp.Flags&memcache.MGetFlagW != 0 {
			return adcache.LeaseGetOutput{
				Type:    adcache.LeaseGetTypeGranted,
				LeaseID: resp.CAS,
			}, nil
		}

		return adcache.LeaseGetOutput{
			Type: adcache.LeaseGetTypeOK,
			Data: resp.Data,
		}, nil
	}
}

// LeaseSet ...
func (p Pipeline) LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error {
	fn := p.pipe.MSet(key, value, memcache.MSetOptions{
		CAS: leaseID,
		TTL: ttl,
	})
	return func() error {
		_, err := fn()
		return err
	}
}

// Delete ...
func (p Pipeline) Delete(key string) func() error {
	fn := p.pipe.MDel(key, memcache.MDelOptions{})
	return func() error {
		_, err := fn()
		return err
	}
}

// Finish ...
func (p Pipeline) Finish() {
	p.pipe.Finish()
}
