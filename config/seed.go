package config

import (
	"log"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/lomdim/lomdim-backend/models"
)

// DefaultSubjects returns the built-in demo dataset. It is injectable rather
// than process-global state: callers (and tests) decide whether to load it.
func DefaultSubjects() []models.Subject {
	return []models.Subject{
		{
			ID:          uuid.New(),
			SubjectName: "ATP (אדנוזין טריפוספט)",
			CourseName:  "התא",
			Slug:        slug.Make("ATP (אדנוזין טריפוספט)"),
			ImageUrl:    "./assets/the_cell.png",
			Tags: []models.Tag{
				{Name: "אנרגיה בתא", Color: "green"},
				{Name: "מטבוליזם", Color: "blue"},
				{Name: "נוקלאוטידים", Color: "orange"},
			},
			Info: []models.ContentNode{
				{
					Title:       "מהו ATP",
					Description: "ATP (Adenosine Triphosphate – אדנוזין טריפוספט) הוא מולקולה המכילה בסיס אדנין, סוכר ריבוז ושלוש קבוצות פוספט. הוא מהווה את מקור האנרגיה המרכזי בתא.",
					SubInfo: []models.ContentNode{
						{
							Title:       "מבנה המולקולה",
							Description: "המולקולה מורכבת מבסיס חנקני (Adenine), סוכר (Ribose) ושלוש קבוצות פוספט (Triphosphate). הקשרים בין קבוצות הפוספט עשירים באנרגיה.",
						},
						{
							Title:       "תפקיד בתא",
							Description: "ATP מספק אנרגיה לתהליכים תאיים כמו סינתזת חלבונים, העברת חומרים דרך ממברנות והתכווצות שרירים.",
							SubInfo: []models.ContentNode{
								{
									Title:       "תפקיד בתא",
									Description: "ATP מספק אנרגיה לתהליכים תאיים כמו סינתזת חלבונים, העברת חומרים דרך ממברנות והתכווצות שרירים.",
									SubInfo: []models.ContentNode{
										{
											Title:       "תפקיד בתא",
											Description: "ATP מספק אנרגיה לתהליכים תאיים כמו סינתזת חלבונים, העברת חומרים דרך ממברנות והתכווצות שרירים.",
										},
									},
								},
								{
									Title:       "שחרור אנרגיה",
									Description: "כאשר קשר בין קבוצות הפוספט נשבר, ATP הופך ל-ADP (Adenosine Diphosphate) או AMP (Adenosine Monophosphate), ותוך כדי כך משתחררת אנרגיה זמינה לשימוש מיידי.",
								},
							},
						},
						{
							Title:       "שחרור אנרגיה",
							Description: "כאשר קשר בין קבוצות הפוספט נשבר, ATP הופך ל-ADP (Adenosine Diphosphate) או AMP (Adenosine Monophosphate), ותוך כדי כך משתחררת אנרגיה זמינה לשימוש מיידי.",
						},
					},
				},
			},
			CreatedBy: "seed",
		},
		{
			ID:          uuid.New(),
			SubjectName: "מולקולה אמפיפתית (Amphipathic molecule)",
			CourseName:  "התא",
			Slug:        slug.Make("מולקולה אמפיפתית (Amphipathic molecule)"),
			Tags: []models.Tag{
				{Name: "מבנה מולקולרי", Color: "blue"},
				{Name: "הידרופובי והידרופילי", Color: "teal"},
				{Name: "ממברנות ביולוגיות", Color: "purple"},
			},
			Info: []models.ContentNode{
				{
					Title:       "מהי מולקולה אמפיפתית",
					Description: "מולקולה אמפיפתית (Amphipathic) היא מולקולה שיש בה גם אזורים הידרופוביים (שאינם מסיסים במים) וגם אזורים הידרופיליים (נמשכים למים).",
					SubInfo: []models.ContentNode{
						{
							Title:       "החלק ההידרופילי",
							Description: "החלק ההידרופילי הוא הקצה הפולרי של המולקולה, אשר נמשך למים ויכול ליצור קשרים עם מולקולות מים או יונים טעונים.",
						},
						{
							Title:       "החלק ההידרופובי",
							Description: "החלק ההידרופובי הוא קצה שאינו מסיס במים, לרוב מורכב מזנבות פחמימניים ארוכים שאינם יוצרים קשרים עם מים.",
						},
						{
							Title:       "דוגמה ביולוגית",
							Description: "פוספוליפידים (Phospholipids), המרכיבים העיקריים של קרומי התא, הם מולקולות אמפיפתיות. הם יוצרים מבנה דו-שכבתי שבו החלקים ההידרופוביים פונים פנימה וההידרופיליים פונים החוצה אל הסביבה המימית.",
						},
					},
				},
			},
			CreatedBy: "seed",
		},
	}
}

// SeedSubjects loads the default dataset when the subjects table is empty.
func SeedSubjects(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Subject{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	subjects := DefaultSubjects()
	if err := db.Create(&subjects).Error; err != nil {
		return err
	}
	log.Printf("seeded %d default subjects", len(subjects))
	return nil
}
