package tracker

import (
	"context"
	"os"
	"time"

	"civicradar/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ChannelSource hands out a caller-owned channel.
type ChannelSource struct {
	ch <-chan Location
}

func NewChannelSource(ch <-chan Location) *ChannelSource {
	return &ChannelSource{ch: ch}
}

func (s *ChannelSource) Watch(context.Context) (<-chan Location, error) {
	if s.ch == nil {
		return nil, ErrLocationUnavailable
	}

	return s.ch, nil
}

// GeoJSONTrackSource replays the Point features of a FeatureCollection.
// Optional properties: "accuracy" (meters) and "timestamp" (RFC 3339).
type GeoJSONTrackSource struct {
	fixes    []Location
	interval time.Duration
	now      func() time.Time
}

// LoadGeoJSONTrack reads a track file. interval spaces the emissions; zero
// emits as fast as the consumer reads.
func LoadGeoJSONTrack(path string, interval time.Duration) (*GeoJSONTrackSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read track %s", path)
	}

	return ParseGeoJSONTrack(data, interval)
}

func ParseGeoJSONTrack(data []byte, interval time.Duration) (*GeoJSONTrackSource, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse track")
	}

	fixes := make([]Location, 0, len(fc.Features))
	for i, feature := range fc.Features {
		point, ok := feature.Geometry.(orb.Point)
		if !ok {
			continue
		}

		fix := Location{Latitude: point.Lat(), Longitude: point.Lon()}
		if accuracy, ok := feature.Properties["accuracy"].(float64); ok {
			fix.Accuracy = &accuracy
		}
		if raw := feature.Properties.MustString("timestamp", ""); raw != "" {
			ts, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, errors.Wrapf(err, "feature %d timestamp", i)
			}
			fix.Timestamp = ts
		}
		fixes = append(fixes, fix)
	}

	if len(fixes) == 0 {
		return nil, errors.New("track has no Point features")
	}

	return &GeoJSONTrackSource{fixes: fixes, interval: interval, now: time.Now}, nil
}

// Len returns the number of fixes in the track.
func (s *GeoJSONTrackSource) Len() int {
	return len(s.fixes)
}

// Watch emits every fix once. Fixes without a timestamp are stamped at emission.
func (s *GeoJSONTrackSource) Watch(ctx context.Context) (<-chan Location, error) {
	out := make(chan Location)

	go func() {
		defer close(out)

		for i, fix := range s.fixes {
			if i > 0 && s.interval > 0 {
				timer := time.NewTimer(s.interval)
				select {
				case <-ctx.Done():
					timer.Stop()

					return
				case <-timer.C:
				}
			}

			if fix.Timestamp.IsZero() {
				fix.Timestamp = s.now()
			}

			select {
			case <-ctx.Done():
				return
			case out <- fix:
			}
		}
	}()

	return out, nil
}
