// Package scraper drives a headless browser over public profile listings
// and feeds the extracted profiles into the directory. Page traversal is a
// pipeline of per-item results so one broken profile never aborts a run.
package scraper

import (
	"context"
	"fmt"

	"github.com/outreachlab/campaign-manager-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// FetchFunc loads a single profile page and extracts its fields.
type FetchFunc func(ctx context.Context, profileURL string) (*models.CreateProfileRequest, error)

// Sink receives extracted profiles. The boolean reports whether the
// profile was newly stored, as opposed to skipped as a duplicate.
type Sink interface {
	Store(profile *models.CreateProfileRequest) (created bool, err error)
}

// Summary aggregates the outcome of a scrape run. Failures are counted,
// not fatal.
type Summary struct {
	Visited    int
	Scraped    int
	Failed     int
	Saved      int
	Duplicates int
}

func (s Summary) String() string {
	return fmt.Sprintf("visited=%d scraped=%d failed=%d saved=%d duplicates=%d",
		s.Visited, s.Scraped, s.Failed, s.Saved, s.Duplicates)
}

// Pipeline visits each profile link in order, extracting and storing one
// profile at a time.
type Pipeline struct {
	Fetch FetchFunc
	Sink  Sink
	// Delay runs between profile visits; nil means no pause. The rod
	// collector plugs in a randomized wait to look less like a bot.
	Delay func()
}

// Run processes up to max links (all of them when max <= 0) and returns
// the aggregated summary. The context cancels the run between items.
func (p *Pipeline) Run(ctx context.Context, links []string, max int) Summary {
	if max > 0 && len(links) > max {
		links = links[:max]
	}

	var summary Summary
	for _, link := range links {
		select {
		case <-ctx.Done():
			logrus.Warnf("Scrape run cancelled after %d profiles", summary.Visited)
			return summary
		default:
		}

		summary.Visited++

		profile, err := p.Fetch(ctx, link)
		if err != nil {
			summary.Failed++
			logrus.Warnf("Failed to scrape profile %s: %v", link, err)
			continue
		}
		summary.Scraped++

		created, err := p.Sink.Store(profile)
		if err != nil {
			summary.Failed++
			logrus.Warnf("Failed to store profile %s: %v", link, err)
			continue
		}
		if created {
			summary.Saved++
			logrus.Infof("Saved profile: %s", profile.Name)
		} else {
			summary.Duplicates++
			logrus.Debugf("Skipped duplicate profile: %s", profile.ProfileURL)
		}

		if p.Delay != nil {
			p.Delay()
		}
	}

	return summary
}
