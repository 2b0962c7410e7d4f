package metrics

import (
	"sync/atomic"

	"code.cloudfoundry.org/lager"
)

//go:generate counterfeiter . Counter

type Counter interface {
	Inc(lager.Logger)
	IncN(lager.Logger, int)
}

type counter struct {
	name  string
	total int64
}

func (c *counter) Inc(logger lager.Logger) {
	c.IncN(logger, 1)
}

func (c *counter) IncN(logger lager.Logger, count int) {
	if count <= 0 {
		return
	}

	total := atomic.AddInt64(&c.total, int64(count))

	logger.Session("emit-count", lager.Data{
		"name":      c.name,
		"increment": count,
		"total":     total,
	}).Debug("emitted")
}

type nullCounter struct{}

func (c *nullCounter) Inc(logger lager.Logger)             {}
func (c *nullCounter) IncN(logger lager.Logger, count int) {}
