package domain

import "time"

// Website content sections editable from the admin back-office.
const (
	SectionHero        = "hero"
	SectionMetrics     = "metrics"
	SectionEngineering = "engineering"
	SectionSupport     = "support"
	SectionTechnology  = "technology"
)

// ValidSection reports whether s names an editable content section.
func ValidSection(s string) bool {
	switch s {
	case SectionHero, SectionMetrics, SectionEngineering, SectionSupport, SectionTechnology:
		return true
	}
	return false
}

type Metric struct {
	Label string `json:"label,omitempty" dynamodbav:"label"`
	Value string `json:"value,omitempty" dynamodbav:"value"`
	Icon  string `json:"icon,omitempty" dynamodbav:"icon"`
}

type TechnologyFeature struct {
	Icon        string `json:"icon,omitempty" dynamodbav:"icon"`
	Title       string `json:"title,omitempty" dynamodbav:"title"`
	Description string `json:"description,omitempty" dynamodbav:"description"`
}

type TechnologyStat struct {
	Value string `json:"value,omitempty" dynamodbav:"value"`
	Label string `json:"label,omitempty" dynamodbav:"label"`
}

// WebsiteContent holds every editable field across sections; a record only
// populates the fields its section uses. PK: section.
type WebsiteContent struct {
	Section string `json:"section" dynamodbav:"section"`

	HeroImage       string `json:"hero_image,omitempty" dynamodbav:"hero_image"`
	HeroTitle       string `json:"hero_title,omitempty" dynamodbav:"hero_title"`
	HeroSubtitle    string `json:"hero_subtitle,omitempty" dynamodbav:"hero_subtitle"`
	HeroTagline     string `json:"hero_tagline,omitempty" dynamodbav:"hero_tagline"`
	HeroDescription string `json:"hero_description,omitempty" dynamodbav:"hero_description"`
	HeroButton1Text string `json:"hero_button1_text,omitempty" dynamodbav:"hero_button1_text"`
	HeroButton2Text string `json:"hero_button2_text,omitempty" dynamodbav:"hero_button2_text"`

	Metrics []Metric `json:"metrics,omitempty" dynamodbav:"metrics"`

	EngineeringTitle       string `json:"engineering_title,omitempty" dynamodbav:"engineering_title"`
	EngineeringDescription string `json:"engineering_description,omitempty" dynamodbav:"engineering_description"`
	EngineeringImage       string `json:"engineering_image,omitempty" dynamodbav:"engineering_image"`
	SupportTitle           string `json:"support_title,omitempty" dynamodbav:"support_title"`
	SupportDescription     string `json:"support_description,omitempty" dynamodbav:"support_description"`
	SupportImage           string `json:"support_image,omitempty" dynamodbav:"support_image"`

	CarouselImages []string `json:"carousel_images,omitempty" dynamodbav:"carousel_images"`
	CarouselTexts  []string `json:"carousel_texts,omitempty" dynamodbav:"carousel_texts"`

	TechnologyTitle       string              `json:"technology_title,omitempty" dynamodbav:"technology_title"`
	TechnologySubtitle    string              `json:"technology_subtitle,omitempty" dynamodbav:"technology_subtitle"`
	TechnologyDescription string              `json:"technology_description,omitempty" dynamodbav:"technology_description"`
	TechnologyFeatures    []TechnologyFeature `json:"technology_features,omitempty" dynamodbav:"technology_features"`
	TechnologyStats       []TechnologyStat    `json:"technology_stats,omitempty" dynamodbav:"technology_stats"`
	TechnologyImage       string              `json:"technology_image,omitempty" dynamodbav:"technology_image"`

	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}
