package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOfferCatalogJSON(t *testing.T) {
	payload := OfferCatalog("Monthly plans", []Offer{
		{Name: "Group Class", Price: "30", Currency: "GBP"},
		{Name: "1:1 Standard", Price: "69", Currency: "GBP"},
	})
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(JSON(payload)), &decoded))
	require.Equal(t, "OfferCatalog", decoded["@type"])
	items, ok := decoded["itemListElement"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	require.Equal(t, "30", first["price"])
	require.Equal(t, "GBP", first["priceCurrency"])
}

func TestOrganizationDefaultsType(t *testing.T) {
	require.Equal(t, "Organization", Organization("", "ROL's+", "", "")["@type"])
	org := Organization("MusicSchool", "ROL's+", "https://example.com", "")
	require.Equal(t, "MusicSchool", org["@type"])
	require.Equal(t, "https://example.com", org["url"])
	_, hasLogo := org["logo"]
	require.False(t, hasLogo)
}

func TestBreadcrumbListPositions(t *testing.T) {
	list := BreadcrumbList([]BreadcrumbItem{{Name: "Home", Item: "/"}, {Name: "Privacy", Item: "/legal/privacy"}})
	el := list["itemListElement"].([]map[string]any)
	require.Equal(t, 1, el[0]["position"])
	require.Equal(t, 2, el[1]["position"])
}

func TestJSONReturnsEmptyOnError(t *testing.T) {
	require.Equal(t, "", JSON(map[string]any{"bad": make(chan int)}))
}
