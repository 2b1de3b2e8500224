package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
)

func TestNavigationURL(t *testing.T) {
	from := schema.Location{Latitude: 20.04, Longitude: 110.32}
	to := &schema.Toilet{
		Name:     "人民公园公厕",
		Location: schema.NewPoint(110.3417, 20.0458),
	}

	url, err := NavigationURL(from, "我的位置", to, NavigationModeWalk)
	assert.NoError(t, err)
	assert.Equal(t,
		"https://uri.amap.com/navigation?from=110.32,20.04,%E6%88%91%E7%9A%84%E4%BD%8D%E7%BD%AE&to=110.3417,20.0458,%E4%BA%BA%E6%B0%91%E5%85%AC%E5%9B%AD%E5%85%AC%E5%8E%95&mode=walk&src=haikou-toilet-map",
		url)
}

func TestNavigationURLDefaultsToWalk(t *testing.T) {
	to := &schema.Toilet{Name: "east lake", Location: schema.NewPoint(110.3455, 20.0226)}

	url, err := NavigationURL(schema.Location{Latitude: 20.04, Longitude: 110.32}, "start", to, "")
	assert.NoError(t, err)
	assert.Contains(t, url, "&mode=walk&")
}

func TestNavigationURLWithoutTarget(t *testing.T) {
	from := schema.Location{Latitude: 20.04, Longitude: 110.32}

	_, err := NavigationURL(from, "start", nil, NavigationModeWalk)
	assert.Error(t, err)

	_, err = NavigationURL(from, "start", &schema.Toilet{Name: "no location"}, NavigationModeWalk)
	assert.Error(t, err)
}
