package dto

// CreateCourseRequest is bound from a multipart form; photo and video arrive
// as file parts.
type CreateCourseRequest struct {
	Name                 string   `form:"courseName" binding:"required"`
	Code                 string   `form:"courseCode" binding:"required"`
	Description          *string  `form:"courseDescription"`
	WeightRequirements   *string  `form:"weightRequirements"`
	HeightRequirements   *string  `form:"heightRequirements"`
	VisionStandards      *string  `form:"visionStandards"`
	MedicalRequirements  *string  `form:"medicalRequirements"`
	MinQualification     *string  `form:"minQualification"`
	AgeCriteria          *string  `form:"ageCriteria"`
	Fees                 float64  `form:"fees" binding:"gte=0"`
	InternshipIncluded   bool     `form:"internshipIncluded"`
	InstallmentAvailable bool     `form:"installmentAvailable"`
	InstallmentPolicy    *string  `form:"installmentPolicy"`
}

// UpdateCourseRequest partially updates a course.
type UpdateCourseRequest struct {
	Name                 *string  `form:"courseName"`
	Code                 *string  `form:"courseCode"`
	Description          *string  `form:"courseDescription"`
	WeightRequirements   *string  `form:"weightRequirements"`
	HeightRequirements   *string  `form:"heightRequirements"`
	VisionStandards      *string  `form:"visionStandards"`
	MedicalRequirements  *string  `form:"medicalRequirements"`
	MinQualification     *string  `form:"minQualification"`
	AgeCriteria          *string  `form:"ageCriteria"`
	Fees                 *float64 `form:"fees" binding:"omitempty,gte=0"`
	InternshipIncluded   *bool    `form:"internshipIncluded"`
	InstallmentAvailable *bool    `form:"installmentAvailable"`
	InstallmentPolicy    *string  `form:"installmentPolicy"`
}
