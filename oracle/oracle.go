// Package oracle implements the client for the remote address usage service.
// Given a batch of addresses the service reports which of them have ever
// appeared in the ledger and how they were used.
package oracle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/decred/go-socks/socks"
	"golang.org/x/net/proxy"

	"github.com/dev-warrior777/go-recovery-client/wallet"
)

var ErrNoAPI = errors.New("no usage api url")

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string

	HttpClient HttpClient
}

// NewClient makes a usage oracle client for one coin network. baseURL is the
// root of the usage api, e.g. https://host/api/v1/btc. A nil dialer uses a
// direct connection.
func NewClient(baseURL string, dialer proxy.Dialer) *Client {
	dial := net.Dial
	if dialer != nil {
		dial = dialer.Dial
	}
	transport := &http.Transport{Dial: dial}
	httpClient := &http.Client{Transport: transport, Timeout: time.Second * 10}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: httpClient,
	}
}

// NewTorClient makes a usage oracle client that dials through a local tor
// socks proxy, one circuit per client.
func NewTorClient(baseURL, proxyAddr string) *Client {
	torProxy := &socks.Proxy{
		Addr:         proxyAddr,
		TorIsolation: true,
	}
	transport := &http.Transport{DialContext: torProxy.DialContext}
	httpClient := &http.Client{Transport: transport, Timeout: time.Second * 30}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: httpClient,
	}
}

type usedAddressesRequest struct {
	Addresses []string `json:"addresses"`
}

type usedAddressesResponse struct {
	Message   string                `json:"message,omitempty"`
	Addresses []wallet.AddressUsage `json:"addresses"`
}

// FindUsedAddresses asks the usage service which of addresses have ever been
// used. Addresses the service does not know are absent from the reply. There
// is no retry; a transport or server error fails the lookup.
func (c *Client) FindUsedAddresses(addresses []string) ([]wallet.AddressUsage, error) {
	if c.baseURL == "" {
		return nil, ErrNoAPI
	}
	body, err := json.Marshal(&usedAddressesRequest{Addresses: addresses})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/addresses/used", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var reply usedAddressesResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		if reply.Message != "" {
			return nil, fmt.Errorf("usage api: %s", reply.Message)
		}
		return nil, fmt.Errorf("usage api: status %d", resp.StatusCode)
	}
	return reply.Addresses, nil
}
