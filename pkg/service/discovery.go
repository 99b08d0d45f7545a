package service

import (
	"context"

	"github.com/Drenae/AndroidTvRemote/pkg/discovery"
)

// Discover starts looking for TVs and reports them to listener. A running
// discovery is restarted with the new listener.
func (c *Client) Discover(ctx context.Context, listener discovery.Listener) error {
	if listener == nil {
		listener = discovery.NopListener{}
	}
	browser := discovery.NewBrowser(c.config.Discovery, discoveryBridge{client: c, next: listener})

	c.mu.Lock()
	old := c.browser
	c.browser = browser
	c.mu.Unlock()

	if old != nil {
		old.Stop()
	}
	return browser.Start(ctx)
}

// StopDiscovery stops a running discovery.
func (c *Client) StopDiscovery() {
	c.mu.Lock()
	browser := c.browser
	c.browser = nil
	c.mu.Unlock()

	if browser != nil {
		browser.Stop()
	}
}

// DiscoveredTvs returns the TVs found by the running discovery.
func (c *Client) DiscoveredTvs() ([]discovery.DiscoveredTv, error) {
	c.mu.Lock()
	browser := c.browser
	c.mu.Unlock()

	if browser == nil {
		return nil, discovery.ErrNotRunning
	}
	return browser.Snapshot()
}
