package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/oshomadesse/health-score-api/models"
)

const defaultFitAPIURL = "https://www.googleapis.com/fitness/v1/users/me/dataset:aggregate"

// Google Fit aggregate data type names.
const (
	dataTypeSteps     = "com.google.step_count.delta"
	dataTypeCalories  = "com.google.calories.expended"
	dataTypeHeartRate = "com.google.heart_rate.bpm"
	dataTypeSleep     = "com.google.sleep.segment"
)

// Sleep segment classification codes.
// 1: sleep (generic), 2: bedtime, 3: awake, 4: light, 5: deep, 6: REM.
const (
	segmentAwake = 3
	segmentDeep  = 5
)

const defaultRestingHeartRate = 60 // bpm, used when no heart-rate samples exist

type aggregateRequest struct {
	AggregateBy     []aggregateBy `json:"aggregateBy"`
	BucketByTime    bucketByTime  `json:"bucketByTime"`
	StartTimeMillis int64         `json:"startTimeMillis"`
	EndTimeMillis   int64         `json:"endTimeMillis"`
}

type aggregateBy struct {
	DataTypeName string `json:"dataTypeName"`
}

type bucketByTime struct {
	DurationMillis int64 `json:"durationMillis"`
}

type aggregateResponse struct {
	Bucket []fitBucket `json:"bucket"`
}

type fitBucket struct {
	Dataset []fitDataset `json:"dataset"`
}

type fitDataset struct {
	DataSourceID string     `json:"dataSourceId"`
	Point        []fitPoint `json:"point"`
}

// Google Fit serializes the nanosecond timestamps as decimal strings.
type fitPoint struct {
	StartTimeNanos string     `json:"startTimeNanos"`
	EndTimeNanos   string     `json:"endTimeNanos"`
	Value          []fitValue `json:"value"`
}

type fitValue struct {
	IntVal int64   `json:"intVal"`
	FpVal  float64 `json:"fpVal"`
}

// FitClient calls the Google Fit aggregation API. The bearer credential is
// supplied per call by the caller, which also owns its refresh and expiry.
type FitClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewFitClient builds a client against the real API, or against FIT_API_URL
// when that is set.
func NewFitClient() *FitClient {
	baseURL := os.Getenv("FIT_API_URL")
	if baseURL == "" {
		baseURL = defaultFitAPIURL
	}
	return &FitClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchYesterday aggregates yesterday's samples (local midnight through
// 23:59:59.999) into a partial health record. The caller merges the result
// over a previous or default record.
func (c *FitClient) FetchYesterday(ctx context.Context, accessToken string) (models.HealthData, error) {
	start, end := yesterdayWindow(time.Now())
	return c.FetchWindow(ctx, accessToken, start, end)
}

// FetchWindow aggregates one bucketed window of provider samples. Provider
// and transport failures are returned unchanged; absent or empty datasets
// degrade to zero values instead of failing. No retries are performed here.
func (c *FitClient) FetchWindow(ctx context.Context, accessToken string, startMillis, endMillis int64) (models.HealthData, error) {
	reqBody := aggregateRequest{
		AggregateBy: []aggregateBy{
			{DataTypeName: dataTypeSteps},
			{DataTypeName: dataTypeCalories},
			{DataTypeName: dataTypeHeartRate},
			{DataTypeName: dataTypeSleep},
		},
		BucketByTime:    bucketByTime{DurationMillis: endMillis - startMillis},
		StartTimeMillis: startMillis,
		EndTimeMillis:   endMillis,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return models.HealthData{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return models.HealthData{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return models.HealthData{}, fmt.Errorf("google fit request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return models.HealthData{}, fmt.Errorf("google fit returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var aggResp aggregateResponse
	if err := json.NewDecoder(resp.Body).Decode(&aggResp); err != nil {
		return models.HealthData{}, fmt.Errorf("google fit response decode failed: %w", err)
	}

	if len(aggResp.Bucket) == 0 {
		return models.HealthData{}, nil
	}
	bucket := aggResp.Bucket[0]

	steps := sumIntValues(findDataset(bucket, dataTypeSteps))
	calories := sumFpValues(findDataset(bucket, dataTypeCalories))
	heartRate := meanFpValue(findDataset(bucket, dataTypeHeartRate))
	sleep := aggregateSleep(findDataset(bucket, dataTypeSleep))

	resting := math.Round(heartRate)
	if resting == 0 {
		resting = defaultRestingHeartRate
	}

	return models.HealthData{
		Date:  time.UnixMilli(startMillis).Format("2006-01-02"),
		Sleep: &sleep,
		Activity: &models.ActivityMetrics{
			Steps:    int(steps),
			Calories: math.Round(calories),
		},
		HeartRate: &models.HeartRateMetrics{Resting: resting},
	}, nil
}

// yesterdayWindow returns yesterday's local-time bounds in epoch millis:
// midnight inclusive through 23:59:59.999.
func yesterdayWindow(now time.Time) (startMillis, endMillis int64) {
	y := now.AddDate(0, 0, -1)
	start := time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, y.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start.UnixMilli(), end.UnixMilli()
}

// findDataset matches a dataset by data type; the provider embeds the type
// name inside the data source id.
func findDataset(bucket fitBucket, typeName string) *fitDataset {
	for i := range bucket.Dataset {
		if strings.Contains(bucket.Dataset[i].DataSourceID, typeName) {
			return &bucket.Dataset[i]
		}
	}
	return nil
}

func sumIntValues(ds *fitDataset) int64 {
	if ds == nil {
		return 0
	}
	var sum int64
	for _, p := range ds.Point {
		if len(p.Value) > 0 {
			sum += p.Value[0].IntVal
		}
	}
	return sum
}

func sumFpValues(ds *fitDataset) float64 {
	if ds == nil {
		return 0
	}
	var sum float64
	for _, p := range ds.Point {
		if len(p.Value) > 0 {
			sum += p.Value[0].FpVal
		}
	}
	return sum
}

// meanFpValue is the simple arithmetic mean across points, not time-weighted.
func meanFpValue(ds *fitDataset) float64 {
	if ds == nil || len(ds.Point) == 0 {
		return 0
	}
	var sum float64
	for _, p := range ds.Point {
		if len(p.Value) > 0 {
			sum += p.Value[0].FpVal
		}
	}
	return sum / float64(len(ds.Point))
}

// aggregateSleep reduces sleep segments to the canonical sleep metrics.
// Every segment except awake contributes to total sleep time; deep segments
// additionally accrue deep-sleep time; each awake segment counts one wake
// episode.
func aggregateSleep(ds *fitDataset) models.SleepMetrics {
	if ds == nil || len(ds.Point) == 0 {
		return models.SleepMetrics{}
	}

	var totalSleepMillis, deepSleepMillis float64
	wakeCount := 0

	for _, p := range ds.Point {
		if len(p.Value) == 0 {
			continue
		}
		code := p.Value[0].IntVal
		durationMillis := float64(parseNanos(p.EndTimeNanos)-parseNanos(p.StartTimeNanos)) / 1e6

		if code != segmentAwake {
			totalSleepMillis += durationMillis
		}
		if code == segmentDeep {
			deepSleepMillis += durationMillis
		}
		if code == segmentAwake {
			wakeCount++
		}
	}

	totalHours := math.Round(totalSleepMillis/(1000*60*60)*10) / 10
	deepSleepPercentage := 0.0
	if totalSleepMillis > 0 {
		deepSleepPercentage = math.Round(deepSleepMillis / totalSleepMillis * 100)
	}

	return models.SleepMetrics{
		TotalHours:          totalHours,
		DeepSleepPercentage: deepSleepPercentage,
		WakeCount:           wakeCount,
	}
}

func parseNanos(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
