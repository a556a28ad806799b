package models

import "time"

// Enquiry status workflow values.
const (
	EnquiryStatusPending   = "pending"
	EnquiryStatusContacted = "contacted"
	EnquiryStatusConverted = "converted"
	EnquiryStatusCancelled = "cancelled"
)

// AdmissionCode is a referral code counsellors hand out to prospects.
type AdmissionCode struct {
	ID          string    `json:"admissionCodeId" db:"admission_code_id"`
	Code        string    `json:"code" db:"code"`
	Description *string   `json:"description,omitempty" db:"description"`
	Active      bool      `json:"active" db:"active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// AdmissionEnquiry tracks a prospective student from first contact through
// conversion or cancellation.
type AdmissionEnquiry struct {
	ID                 string    `json:"enquiryId" db:"enquiry_id"`
	CounsellorID       string    `json:"counsellorId" db:"counsellor_id"`
	StudentName        string    `json:"studentName" db:"student_name"`
	StudentPhoneNo     string    `json:"studentPhoneNo" db:"student_phone_no"`
	StudentAltPhoneNo  *string   `json:"studentAltPhoneNo,omitempty" db:"student_alt_phone_no"`
	StudentEmail       *string   `json:"studentEmail,omitempty" db:"student_email"`
	StudentAddress     *string   `json:"studentAddress,omitempty" db:"student_address"`
	GuardianName       *string   `json:"guardianName,omitempty" db:"guardian_name"`
	GuardianPhoneNo    *string   `json:"guardianPhoneNo,omitempty" db:"guardian_phone_no"`
	FitMedically       bool      `json:"fitMedically" db:"fit_medically"`
	MeetsHeightReq     bool      `json:"meetsHeightRequirements" db:"meets_height_requirements"`
	MeetsWeightReq     bool      `json:"meetsWeightRequirements" db:"meets_weight_requirements"`
	MeetsVisionStd     bool      `json:"meetsVisionStandards" db:"meets_vision_standards"`
	AdmissionCode      string    `json:"admissionCode" db:"admission_code"`
	CourseID           *string   `json:"courseId,omitempty" db:"course_id"`
	Status             string    `json:"status" db:"status"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}
