package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
)

const clientLogPrefix = "toilet-api"

// Client talks to the toilet map HTTP API.
type Client struct {
	endpoint string
	client   *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NearbyToilets fetches the toilets around a point. radius is in meters;
// zero means the server default. Active filters are sent as the CSV the
// server expects.
func (c *Client) NearbyToilets(cords schema.Location, radius int, filters Filters) ([]schema.Toilet, error) {
	values := url.Values{
		"latitude":  []string{fmt.Sprintf("%v", cords.Latitude)},
		"longitude": []string{fmt.Sprintf("%v", cords.Longitude)},
	}
	if radius > 0 {
		values.Set("radius", fmt.Sprintf("%d", radius))
	}
	if csv := filters.CSV(); csv != "" {
		values.Set("filters", csv)
	}

	reqString := fmt.Sprintf("%s/api/v1/toilets?%s", c.endpoint, values.Encode())
	log.WithField("prefix", clientLogPrefix).WithField("req", reqString).Debug("request nearby toilets")

	resp, err := c.client.Get(reqString)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fail to fetch nearby toilets")
	}

	var toilets []schema.Toilet
	if err := json.NewDecoder(resp.Body).Decode(&toilets); err != nil {
		return nil, err
	}

	return toilets, nil
}

// GetToilet fetches a single toilet by its store-assigned id.
func (c *Client) GetToilet(id string) (*schema.Toilet, error) {
	reqString := fmt.Sprintf("%s/api/v1/toilets/%s", c.endpoint, url.PathEscape(id))

	resp, err := c.client.Get(reqString)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("toilet not found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fail to fetch toilet")
	}

	var toilet schema.Toilet
	if err := json.NewDecoder(resp.Body).Decode(&toilet); err != nil {
		return nil, err
	}

	return &toilet, nil
}
