package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
	"github.com/chcorophyll/Free-Public-Toilet-Map/store"
)

// defaultRadius is the nearby search radius in meters when the caller does
// not provide one.
const defaultRadius = 2000

func (s *Server) listNearbyToilets(c *gin.Context) {
	cords, err := parseCoordinates(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingCoordinate, err)
		return
	}

	radius := defaultRadius
	if v := c.Query("radius"); v != "" {
		radius, err = strconv.Atoi(v)
		if err != nil || radius <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidRadius, fmt.Errorf("invalid radius value: %q", v))
			return
		}
	}

	filterKeys, err := parseFilterKeys(c.Query("filters"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownFilterKey, err)
		return
	}

	toilets, err := s.mongoStore.NearbyToilets(radius, *cords, filterKeys)
	if err != nil {
		if err == store.ErrUnknownFilterKey {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownFilterKey, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, toilets)
}

func (s *Server) listNearestToilets(c *gin.Context) {
	cords, err := parseCoordinates(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingCoordinate, err)
		return
	}

	limit := int64(10)
	if v := c.Query("limit"); v != "" {
		limit, err = strconv.ParseInt(v, 10, 64)
		if err != nil || limit <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid limit value: %q", v))
			return
		}
	}

	toilets, err := s.mongoStore.NearbyToiletsWithDistance(*cords, limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, toilets)
}

func (s *Server) getToilet(c *gin.Context) {
	toiletID, err := primitive.ObjectIDFromHex(c.Param("toiletID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid toilet ID"))
		return
	}

	toilet, err := s.mongoStore.GetToilet(toiletID)
	if err != nil {
		switch err {
		case store.ErrToiletNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownToilet)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, toilet)
}

// parseCoordinates reads the required longitude and latitude query
// parameters. Both must be present and numeric.
func parseCoordinates(c *gin.Context) (*schema.Location, error) {
	longitude := c.Query("longitude")
	latitude := c.Query("latitude")
	if longitude == "" || latitude == "" {
		return nil, fmt.Errorf("longitude and latitude are required")
	}

	lon, err := strconv.ParseFloat(longitude, 64)
	if err != nil {
		return nil, err
	}

	lat, err := strconv.ParseFloat(latitude, 64)
	if err != nil {
		return nil, err
	}

	return &schema.Location{Latitude: lat, Longitude: lon}, nil
}

// parseFilterKeys splits the comma-separated filters parameter and checks
// every name against the allowed set. Empty segments are dropped.
func parseFilterKeys(filters string) ([]string, error) {
	if filters == "" {
		return nil, nil
	}

	keys := make([]string, 0)
	for _, key := range strings.Split(filters, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !schema.IsFilterKey(key) {
			return nil, fmt.Errorf("unknown filter key: %q", key)
		}
		keys = append(keys, key)
	}

	return keys, nil
}
