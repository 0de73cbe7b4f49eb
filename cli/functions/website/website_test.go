//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package website

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

func TestMerge(t *testing.T) {
	current := schema.Website{
		Name:           "Blog",
		URL:            "https://blog.example.com",
		Category:       "blog",
		CrawlFrequency: schema.FrequencyWeekly,
		IsActive:       true,
	}
	inactive := false

	got := merge(current, schema.WebsiteForm{Name: "Company blog", IsActive: &inactive})
	want := schema.WebsiteForm{
		Name:           "Company blog",
		URL:            "https://blog.example.com",
		Category:       "blog",
		CrawlFrequency: schema.FrequencyWeekly,
		IsActive:       &inactive,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}

	got = merge(current, schema.WebsiteForm{})
	if got.IsActive == nil || !*got.IsActive {
		t.Errorf("expected the current active flag to be kept")
	}
}
