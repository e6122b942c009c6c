package services

// SegmentCohort is one user segment with its membership.
// ResponseIDs are plain identifiers, never references into the input set.
type SegmentCohort struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Count       int      `json:"count"`
	Percentage  int      `json:"percentage"`
	ResponseIDs []string `json:"response_ids"`
}

// Segmentation partitions the response set into four cohorts. The cohorts are
// disjoint by construction; Unclassified counts the records that matched no
// rule (they belong to no cohort but are still part of every total).
type Segmentation struct {
	PowerUsers        SegmentCohort `json:"power_users"`
	EarlyAdopters     SegmentCohort `json:"early_adopters"`
	Skeptics          SegmentCohort `json:"skeptics"`
	PotentialConverts SegmentCohort `json:"potential_converts"`
	Unclassified      int           `json:"unclassified"`
}

// Segment assigns each record to the first matching cohort rule, in order:
//
//  1. power users: positive on upload willingness, virtual try-on, and
//     purchase confidence
//  2. early adopters: positive on virtual try-on and social media shopping
//  3. skeptics: not positive on virtual try-on, with at least one trust issue
//  4. potential converts: positive on social media shopping or purchase
//     confidence
//
// A record claimed by an earlier rule is never re-tested against later ones.
func Segment(records []*SurveyResponse) Segmentation {
	total := len(records)
	seg := Segmentation{
		PowerUsers:        SegmentCohort{Name: "power_users", Description: "Willing to upload, sold on try-on, confident buyers"},
		EarlyAdopters:     SegmentCohort{Name: "early_adopters", Description: "Try-on positive social shoppers"},
		Skeptics:          SegmentCohort{Name: "skeptics", Description: "Cold on try-on with trust concerns"},
		PotentialConverts: SegmentCohort{Name: "potential_converts", Description: "Reachable through social proof or confidence"},
	}
	for _, r := range records {
		switch {
		case Positive(r.ImageUploadWillingness) && Positive(r.VirtualTryOn) && Positive(r.PurchaseConfidence):
			seg.PowerUsers.add(r)
		case Positive(r.VirtualTryOn) && Positive(r.SocialMediaShopping):
			seg.EarlyAdopters.add(r)
		case !Positive(r.VirtualTryOn) && len(r.TrustIssues) > 0:
			seg.Skeptics.add(r)
		case Positive(r.SocialMediaShopping) || Positive(r.PurchaseConfidence):
			seg.PotentialConverts.add(r)
		default:
			seg.Unclassified++
		}
	}
	seg.PowerUsers.Percentage = Percent(seg.PowerUsers.Count, total)
	seg.EarlyAdopters.Percentage = Percent(seg.EarlyAdopters.Count, total)
	seg.Skeptics.Percentage = Percent(seg.Skeptics.Count, total)
	seg.PotentialConverts.Percentage = Percent(seg.PotentialConverts.Count, total)
	return seg
}

func (c *SegmentCohort) add(r *SurveyResponse) {
	c.Count++
	c.ResponseIDs = append(c.ResponseIDs, r.ID)
}
