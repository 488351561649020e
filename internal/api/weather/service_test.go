package weather

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

// MockProvider is a mock implementation of the Provider interface
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Current(ctx context.Context, city string) (types.WeatherSnapshot, error) {
	args := m.Called(ctx, city)
	return args.Get(0).(types.WeatherSnapshot), args.Error(1)
}

func TestServiceCurrent(t *testing.T) {
	logger := slog.Default()
	ctx := context.Background()

	t.Run("ProviderFailureDegradesToNil", func(t *testing.T) {
		mockProvider := new(MockProvider)
		mockProvider.On("Current", ctx, "Atlantis").
			Return(types.WeatherSnapshot{}, errors.New("city not found")).Once()

		service := NewService(mockProvider, logger)

		assert.Nil(t, service.Current(ctx, "Atlantis"))
		mockProvider.AssertExpectations(t)
	})

	t.Run("SnapshotIsCachedPerCity", func(t *testing.T) {
		mockProvider := new(MockProvider)
		snapshot := types.WeatherSnapshot{TempC: 18, Condition: "Clear"}
		mockProvider.On("Current", ctx, "Lisbon").Return(snapshot, nil).Once()

		service := NewService(mockProvider, logger)

		first := service.Current(ctx, "Lisbon")
		second := service.Current(ctx, "Lisbon")

		assert.Equal(t, &snapshot, first)
		assert.Equal(t, &snapshot, second)
		mockProvider.AssertExpectations(t)
	})

	t.Run("FailuresAreNotCached", func(t *testing.T) {
		mockProvider := new(MockProvider)
		snapshot := types.WeatherSnapshot{TempC: 18}
		mockProvider.On("Current", ctx, "Porto").
			Return(types.WeatherSnapshot{}, errors.New("timeout")).Once()
		mockProvider.On("Current", ctx, "Porto").Return(snapshot, nil).Once()

		service := NewService(mockProvider, logger)

		assert.Nil(t, service.Current(ctx, "Porto"))
		assert.Equal(t, &snapshot, service.Current(ctx, "Porto"))
		mockProvider.AssertExpectations(t)
	})
}

func TestClothingAdvice(t *testing.T) {
	assert.Equal(t, "Light clothing and sunscreen", ClothingAdvice(30))
	assert.Equal(t, "Light jacket or sweater", ClothingAdvice(20))
	assert.Equal(t, "Light jacket or sweater", ClothingAdvice(15.1))
	assert.Equal(t, "Warm coat and layers", ClothingAdvice(15))
	assert.Equal(t, "Warm coat and layers", ClothingAdvice(-3))
}

func TestFeedback(t *testing.T) {
	place := func(category string, distanceKm float64) types.PlaceCandidate {
		return types.PlaceCandidate{Name: "spot", Category: category, DistanceKm: distanceKm}
	}

	t.Run("NearbyPlaceGetsDistanceBadge", func(t *testing.T) {
		badges := Feedback(place("spa", 0.4), nil)

		assert.Equal(t, []string{"Conveniently located nearby", "Relaxing ambience perfect for unwinding"}, badges)
	})

	t.Run("ShortTripBadgeUnderThreeKm", func(t *testing.T) {
		badges := Feedback(place("spa", 2.0), nil)

		assert.Contains(t, badges, "Just a short trip away")
	})

	t.Run("FarPlaceSkipsDistanceBadge", func(t *testing.T) {
		badges := Feedback(place("zoo", 8.0), nil)

		assert.Equal(t, []string{"Family-friendly wildlife experience"}, badges)
	})

	t.Run("OutdoorPlaceInGoodWeather", func(t *testing.T) {
		weather := &types.WeatherSnapshot{TempC: 22, Condition: "Clear"}

		badges := Feedback(place("park", 0.5), weather)

		assert.Equal(t, []string{
			"Conveniently located nearby",
			"Perfect for enjoying the nice weather",
			"Peaceful natural surroundings",
		}, badges)
	})

	t.Run("OutdoorPlaceInRain", func(t *testing.T) {
		weather := &types.WeatherSnapshot{TempC: 22, Condition: "Rain"}

		badges := Feedback(place("beach", 5.0), weather)

		assert.Contains(t, badges, "Beautiful even in rain, bring an umbrella")
	})

	t.Run("IndoorPlaceInBadWeather", func(t *testing.T) {
		weather := &types.WeatherSnapshot{TempC: 9, Condition: "Rain"}

		badges := Feedback(place("museum", 5.0), weather)

		assert.Equal(t, []string{"Great indoor activity for today's weather", "Rich in culture and history"}, badges)
	})

	t.Run("IndoorPlaceInHeat", func(t *testing.T) {
		weather := &types.WeatherSnapshot{TempC: 33, Condition: "Clear"}

		badges := Feedback(place("art_gallery", 5.0), weather)

		assert.Contains(t, badges, "Cool escape from the heat")
	})

	t.Run("UnknownCategoryFallsBackToGenericBlurb", func(t *testing.T) {
		badges := Feedback(place("bowling_alley", 5.0), nil)

		assert.Equal(t, []string{genericBlurb}, badges)
	})

	t.Run("NeverMoreThanThreeBadges", func(t *testing.T) {
		weather := &types.WeatherSnapshot{TempC: 22, Condition: "Clear"}

		badges := Feedback(place("park", 0.5), weather)

		assert.LessOrEqual(t, len(badges), maxBadges)
	})
}
