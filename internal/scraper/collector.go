package scraper

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/outreachlab/campaign-manager-backend/internal/models"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	loginURL = "https://www.linkedin.com/login"

	searchResultsSelector = ".search-results__list"
	profileLinkSelector   = ".search-results__list .entity-result__title a"
	topCardSelector       = ".pv-top-card"
	nameSelector          = ".pv-top-card .text-heading-xlarge"
	jobTitleSelector      = ".pv-top-card .text-body-medium"
	companySelector       = ".pv-top-card .inline-show-more-text"
	companyAltSelector    = ".pv-top-card .text-body-small:not(.location)"
	locationSelector      = ".pv-top-card .text-body-small.location"
)

// Collector owns the headless browser session and implements the fetch
// side of the scrape pipeline.
type Collector struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// NewCollector launches a browser and connects to it.
func NewCollector(headless bool, timeout time.Duration) (*Collector, error) {
	l := launcher.New().Headless(headless)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &Collector{
		launcher: l,
		browser:  browser,
		timeout:  timeout,
	}, nil
}

// Close shuts the browser down.
func (c *Collector) Close() {
	if c.browser != nil {
		if err := c.browser.Close(); err == nil {
			c.launcher.Cleanup()
		}
	}
}

// Login signs in so profile pages render fully. Listings degrade to
// teaser cards for anonymous sessions.
func (c *Collector) Login(ctx context.Context, email, password string) error {
	page, err := c.newPage(ctx, loginURL)
	if err != nil {
		return err
	}
	defer page.Close()

	usernameEl, err := page.Element("#username")
	if err != nil {
		return fmt.Errorf("login form not found: %w", err)
	}
	if err := usernameEl.Input(email); err != nil {
		return fmt.Errorf("failed to fill username: %w", err)
	}

	passwordEl, err := page.Element("#password")
	if err != nil {
		return fmt.Errorf("password field not found: %w", err)
	}
	if err := passwordEl.Input(password); err != nil {
		return fmt.Errorf("failed to fill password: %w", err)
	}

	submitEl, err := page.Element(".login__form_action_container button")
	if err != nil {
		return fmt.Errorf("login button not found: %w", err)
	}
	if err := submitEl.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("failed to submit login: %w", err)
	}

	return page.WaitLoad()
}

// CollectLinks opens the search listing and returns the profile URLs it
// advertises, in page order.
func (c *Collector) CollectLinks(ctx context.Context, searchURL string) ([]string, error) {
	page, err := c.newPage(ctx, searchURL)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	if _, err := page.Element(searchResultsSelector); err != nil {
		return nil, fmt.Errorf("search results did not load: %w", err)
	}

	elements, err := page.Elements(profileLinkSelector)
	if err != nil {
		return nil, fmt.Errorf("failed to find profile links: %w", err)
	}

	var links []string
	for _, el := range elements {
		href, err := el.Attribute("href")
		if err != nil || href == nil || *href == "" {
			continue
		}
		links = append(links, *href)
	}

	return links, nil
}

// FetchProfile implements FetchFunc with the live browser.
func (c *Collector) FetchProfile(ctx context.Context, profileURL string) (*models.CreateProfileRequest, error) {
	page, err := c.newPage(ctx, profileURL)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	if _, err := page.Element(topCardSelector); err != nil {
		return nil, fmt.Errorf("profile card did not load: %w", err)
	}

	name, err := c.elementText(page, nameSelector)
	if err != nil {
		return nil, fmt.Errorf("failed to extract name: %w", err)
	}

	jobTitle, err := c.elementText(page, jobTitleSelector)
	if err != nil {
		return nil, fmt.Errorf("failed to extract job title: %w", err)
	}

	// Company placement varies between profiles; try the alternative
	// selector before giving up and sending the profile on with what we
	// have. The directory's own validation decides whether it is enough.
	company, err := c.elementText(page, companySelector)
	if err != nil {
		company, _ = c.elementText(page, companyAltSelector)
	}

	location, _ := c.elementText(page, locationSelector)

	return &models.CreateProfileRequest{
		Name:       name,
		JobTitle:   jobTitle,
		Company:    company,
		Location:   location,
		ProfileURL: profileURL,
	}, nil
}

// RandomDelay pauses 2-4 seconds between profile visits.
func (c *Collector) RandomDelay() {
	time.Sleep(2*time.Second + time.Duration(rand.Int63n(int64(2*time.Second))))
}

func (c *Collector) newPage(ctx context.Context, url string) (*rod.Page, error) {
	page, err := c.browser.Context(ctx).Timeout(c.timeout).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("failed to open page %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		page.Close()
		return nil, fmt.Errorf("failed to load page %s: %w", url, err)
	}
	return page, nil
}

func (c *Collector) elementText(page *rod.Page, selector string) (string, error) {
	el, err := page.Timeout(3 * time.Second).Element(selector)
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
