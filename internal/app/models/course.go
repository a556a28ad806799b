package models

import "time"

// Course represents a catalog entry, including the physical and educational
// admission criteria the original system tracks per course.
type Course struct {
	ID                  string    `json:"courseId" db:"course_id"`
	Name                string    `json:"courseName" db:"course_name"`
	Code                string    `json:"courseCode" db:"course_code"`
	Description         *string   `json:"courseDescription,omitempty" db:"course_description"`
	WeightRequirements  *string   `json:"weightRequirements,omitempty" db:"weight_requirements"`
	HeightRequirements  *string   `json:"heightRequirements,omitempty" db:"height_requirements"`
	VisionStandards     *string   `json:"visionStandards,omitempty" db:"vision_standards"`
	MedicalRequirements *string   `json:"medicalRequirements,omitempty" db:"medical_requirements"`
	MinQualification    *string   `json:"minQualification,omitempty" db:"min_qualification"`
	AgeCriteria         *string   `json:"ageCriteria,omitempty" db:"age_criteria"`
	Fees                float64   `json:"fees" db:"fees"`
	InternshipIncluded  bool      `json:"internshipIncluded" db:"internship_included"`
	InstallmentAvailable bool     `json:"installmentAvailable" db:"installment_available"`
	InstallmentPolicy   *string   `json:"installmentPolicy,omitempty" db:"installment_policy"`
	Photo               *string   `json:"coursePhoto,omitempty" db:"course_photo"`
	Video               *string   `json:"courseVideo,omitempty" db:"course_video"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}
