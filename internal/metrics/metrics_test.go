// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

func getGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	m := &io_prometheus_client.Metric{}
	if err := g.Write(m); err != nil {
		t.Fatalf("write gauge: %v", err)
	}
	return m.GetGauge().GetValue()
}

func getHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	h, ok := o.(prometheus.Histogram)
	if !ok {
		t.Fatalf("observer is %T, not a Histogram", o)
	}
	m := &io_prometheus_client.Metric{}
	if err := h.Write(m); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		err       error
		wantType  string
	}{
		{"success", "select", "string_analyses", nil, ""},
		{"short error", "insert", "string_analyses", errors.New("constraint"), "constraint"},
		{"long error truncated", "upsert", "countries",
			errors.New(strings.Repeat("x", 80)), strings.Repeat("x", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := getHistogramCount(t, DBQueryDuration.WithLabelValues(tt.operation, tt.table))
			RecordDBQuery(tt.operation, tt.table, 3*time.Millisecond, tt.err)
			after := getHistogramCount(t, DBQueryDuration.WithLabelValues(tt.operation, tt.table))
			if after != before+1 {
				t.Errorf("sample count = %d, want %d", after, before+1)
			}
			if tt.err != nil {
				got := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table, tt.wantType))
				if got < 1 {
					t.Errorf("error counter for %q = %v, want >= 1", tt.wantType, got)
				}
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	c := APIRequestsTotal.WithLabelValues("GET", "/api/strings", "200")
	before := testutil.ToFloat64(c)

	RecordAPIRequest("GET", "/api/strings", "200", 12*time.Millisecond)

	if got := testutil.ToFloat64(c); got != before+1 {
		t.Errorf("api_requests_total = %v, want %v", got, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := getGaugeValue(t, APIActiveRequests)
	TrackActiveRequest(true)
	if got := getGaugeValue(t, APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := getGaugeValue(t, APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordCountryRefresh(t *testing.T) {
	RecordCountryRefresh(time.Second, 250, "", nil)
	if got := getGaugeValue(t, CountriesStored); got != 250 {
		t.Errorf("country_refresh_countries = %v, want 250", got)
	}
	if getGaugeValue(t, CountryRefreshLastSuccess) <= 0 {
		t.Error("last success timestamp not set")
	}

	c := CountryRefreshErrors.WithLabelValues("exchange_api")
	before := testutil.ToFloat64(c)
	RecordCountryRefresh(time.Second, 0, "exchange_api", errors.New("timeout"))
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Errorf("errors{exchange_api} = %v, want %v", got, before+1)
	}
	if got := getGaugeValue(t, CountriesStored); got != 250 {
		t.Errorf("failed refresh must not reset the country gauge, got %v", got)
	}
}

func TestRecordLLMRequest(t *testing.T) {
	c := LLMRequests.WithLabelValues("gemini", "success")
	before := testutil.ToFloat64(c)

	RecordLLMRequest("gemini", "success", 300*time.Millisecond)

	if got := testutil.ToFloat64(c); got != before+1 {
		t.Errorf("llm_requests_total = %v, want %v", got, before+1)
	}
}
