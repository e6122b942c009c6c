package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// responseCSVHeader fixes the raw export column order.
var responseCSVHeader = []string{
	"id", "created_at", "completed_at",
	"age", "gender", "shopping_preference", "online_shopping_frequency",
	"find_clothes", "social_media_shopping", "social_media_platforms",
	"clothes_fit", "returns_problem", "mis_sized_items", "trust_issues",
	"color_matching_uncertainty",
	"image_upload_willingness", "try_on_from_social_media", "try_on_use_frequency",
	"try_on_body_type", "try_on_concerns", "speed_expectation", "skin_tone_accuracy",
	"virtual_try_on", "ar_realism", "purchase_confidence", "user_agent",
}

// ExportResponsesCSV renders the raw response set as CSV, one row per record.
// List-valued answers are joined with ";" inside a single cell.
func ExportResponsesCSV(records []*SurveyResponse) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write(responseCSVHeader)
	for _, r := range records {
		rec := []string{
			r.ID,
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.CompletedAt.UTC().Format(time.RFC3339),
			r.Age, r.Gender, r.ShoppingPreference, r.OnlineShoppingFrequency,
			r.FindClothes, r.SocialMediaShopping, strings.Join(r.SocialMediaPlatforms, ";"),
			r.ClothesFit, r.ReturnsProblem, r.MisSizedItems, strings.Join(r.TrustIssues, ";"),
			r.ColorMatchingUncertainty,
			r.ImageUploadWillingness, r.TryOnFromSocialMedia, r.TryOnUseFrequency,
			r.TryOnBodyType, strings.Join(r.TryOnConcerns, ";"), r.SpeedExpectation, r.SkinToneAccuracy,
			r.VirtualTryOn, r.ARRealism, r.PurchaseConfidence, r.UserAgent,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportMetricsXLSX renders a DerivedMetrics snapshot as a workbook with one
// sheet per concern: overview numbers, every distribution table, the
// segmentation, the funnel, and the market-sizing chain.
func ExportMetricsXLSX(m *DerivedMetrics) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const overview = "Overview"
	if err := f.SetSheetName("Sheet1", overview); err != nil {
		return nil, err
	}
	overviewRows := [][]any{
		{"metric", "count", "percentage"},
		{"total responses", m.TotalResponses, ""},
		{"upload willing", m.KeyRates.UploadWilling.Count, m.KeyRates.UploadWilling.Percentage},
		{"purchase confident", m.KeyRates.PurchaseConfident.Count, m.KeyRates.PurchaseConfident.Percentage},
		{"social shoppers", m.KeyRates.SocialShoppers.Count, m.KeyRates.SocialShoppers.Percentage},
		{"adoption cohort", m.KeyRates.AdoptionCohort.Count, m.KeyRates.AdoptionCohort.Percentage},
	}
	if err := writeSheetRows(f, overview, overviewRows); err != nil {
		return nil, err
	}

	distRows := [][]any{{"field", "category", "count", "percentage"}}
	appendDist := func(field string, buckets []DistributionBucket) {
		for _, b := range buckets {
			distRows = append(distRows, []any{field, b.Category, b.Count, b.Percentage})
		}
	}
	appendDist("age_groups", m.AgeGroups)
	appendDist("gender", m.Gender)
	appendDist("shopping_preference", m.ShoppingPreference)
	appendDist("online_shopping_frequency", m.OnlineShoppingFrequency)
	appendDist("find_clothes", m.FindClothes)
	appendDist("clothes_fit", m.ClothesFit)
	appendDist("returns_problem", m.ReturnsProblem)
	appendDist("mis_sized_items", m.MisSizedItems)
	appendDist("color_matching_uncertainty", m.ColorMatchingUncertainty)
	appendDist("purchase_confidence", m.PurchaseConfidence)
	appendDist("speed_expectation", m.SpeedExpectation)
	appendDist("skin_tone_accuracy", m.SkinToneAccuracy)
	appendDist("try_on_body_type", m.TryOnBodyType)
	appendDist("try_on_use_frequency", m.TryOnUseFrequency)
	appendDist("ar_realism", m.ARRealism)
	appendDist("social_media_platforms", m.SocialMediaPlatforms)
	appendDist("trust_issues", m.TrustIssues)
	appendDist("top_concerns", m.TopConcerns)
	if err := addSheet(f, "Distributions", distRows); err != nil {
		return nil, err
	}

	segRows := [][]any{{"segment", "count", "percentage"}}
	for _, c := range []SegmentCohort{m.Segments.PowerUsers, m.Segments.EarlyAdopters, m.Segments.Skeptics, m.Segments.PotentialConverts} {
		segRows = append(segRows, []any{c.Name, c.Count, c.Percentage})
	}
	segRows = append(segRows, []any{"unclassified", m.Segments.Unclassified, ""})
	if err := addSheet(f, "Segments", segRows); err != nil {
		return nil, err
	}

	funnelRows := [][]any{{"stage", "count", "percentage"}}
	for _, st := range m.Funnel {
		funnelRows = append(funnelRows, []any{st.Stage, st.Count, st.Percentage})
	}
	if err := addSheet(f, "Funnel", funnelRows); err != nil {
		return nil, err
	}

	marketRows := [][]any{
		{"figure", "value"},
		{"tam", m.Market.TAM},
		{"sam", m.Market.SAM},
		{"som", m.Market.SOM},
		{"potential_revenue", m.Market.PotentialRevenue},
		{"conversion_opportunity", m.Market.ConversionOpportunity},
	}
	if err := addSheet(f, "Market", marketRows); err != nil {
		return nil, err
	}

	dayRows := [][]any{{"date", "count"}}
	for _, d := range m.ResponsesByDay {
		dayRows = append(dayRows, []any{d.Date, d.Count})
	}
	if err := addSheet(f, "Timeseries", dayRows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return writeSheetRows(f, name, rows)
}

func writeSheetRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell := "A" + strconv.Itoa(i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
