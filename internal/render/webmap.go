package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strconv"

	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/couchcryptid/chicago-health-atlas/internal/artifact"
	"github.com/couchcryptid/chicago-health-atlas/internal/domain"
)

// Map view covering the city of Chicago.
const (
	mapCenterLat = 41.85
	mapCenterLng = -87.65
	mapZoom      = 10
)

var webMapTmpl = template.Must(template.New("webmap").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Metric}} by Chicago Community Area</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
  html, body { margin: 0; height: 100%; }
  #map { height: 100%; }
</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map("map").setView([{{.CenterLat}}, {{.CenterLng}}], {{.Zoom}});
L.tileLayer("https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png", {
  attribution: "&copy; OpenStreetMap contributors &copy; CARTO",
  maxZoom: 19
}).addTo(map);

var areas = {{.FeatureCollection}};

L.geoJSON(areas, {
  style: function (feature) {
    return {
      fillColor: feature.properties.fill,
      fillOpacity: 0.8,
      color: "#333",
      opacity: 0.4,
      weight: 1
    };
  },
  onEachFeature: function (feature, layer) {
    layer.bindTooltip(
      feature.properties.name + ": " + feature.properties.rate + "%",
      { sticky: true }
    );
    L.marker([feature.properties.lat, feature.properties.lng], {
      icon: L.divIcon({
        className: "",
        html: '<div style="font-size: 10px; font-weight: bold; color: black;">' +
          feature.properties.label + "</div>"
      })
    }).addTo(map);
  }
}).addTo(map);
</script>
</body>
</html>
`))

type webMapData struct {
	Metric            string
	CenterLat         float64
	CenterLng         float64
	Zoom              int
	FeatureCollection template.JS
}

// WebMap renders the interactive Leaflet map. Each community area becomes a
// GeoJSON feature styled from the YlOrRd ramp with a sticky tooltip naming
// the area and its rate.
func WebMap(ds domain.Dataset, sum domain.Summary, metric string) (artifact.Artifact, error) {
	fc := geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(ds))}
	for _, area := range ds {
		lng, lat := centroid(area.Geometry)
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       strconv.Itoa(area.ID),
			Geometry: area.Geometry,
			Properties: map[string]any{
				"area":  area.ID,
				"name":  area.Name,
				"rate":  area.Rate,
				"label": strconv.FormatFloat(area.Rate, 'f', 1, 64),
				"lat":   lat,
				"lng":   lng,
				"fill":  ylOrRd.hex(normalize(area.Rate, sum.Min, sum.Max)),
			},
		})
	}

	encoded, err := json.Marshal(&fc)
	if err != nil {
		return artifact.Artifact{}, fmt.Errorf("encode web map features: %w", err)
	}

	var buf bytes.Buffer
	data := webMapData{
		Metric:            metric,
		CenterLat:         mapCenterLat,
		CenterLng:         mapCenterLng,
		Zoom:              mapZoom,
		FeatureCollection: template.JS(encoded),
	}
	if err := webMapTmpl.Execute(&buf, data); err != nil {
		return artifact.Artifact{}, fmt.Errorf("render web map: %w", err)
	}
	return artifact.Artifact{Name: WebMapName, Body: buf.Bytes()}, nil
}
