package dto

// CreateAdmissionCodeRequest creates a referral code.
type CreateAdmissionCodeRequest struct {
	Code        string  `json:"code" binding:"required"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// UpdateAdmissionCodeRequest partially updates a referral code.
type UpdateAdmissionCodeRequest struct {
	Code        *string `json:"code,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// CreateEnquiryRequest opens an admission enquiry.
type CreateEnquiryRequest struct {
	CounsellorID      string  `json:"counsellorId" binding:"required"`
	StudentName       string  `json:"studentName" binding:"required"`
	StudentPhoneNo    string  `json:"studentPhoneNo" binding:"required"`
	StudentAltPhoneNo *string `json:"studentAltPhoneNo,omitempty"`
	StudentEmail      *string `json:"studentEmail,omitempty" binding:"omitempty,email"`
	StudentAddress    *string `json:"studentAddress,omitempty"`
	GuardianName      *string `json:"guardianName,omitempty"`
	GuardianPhoneNo   *string `json:"guardianPhoneNo,omitempty"`
	FitMedically      bool    `json:"fitMedically"`
	MeetsHeightReq    bool    `json:"meetsHeightRequirements"`
	MeetsWeightReq    bool    `json:"meetsWeightRequirements"`
	MeetsVisionStd    bool    `json:"meetsVisionStandards"`
	AdmissionCode     string  `json:"admissionCode" binding:"required"`
	CourseID          *string `json:"courseId,omitempty"`
}

// UpdateEnquiryRequest partially updates an enquiry's contact details.
type UpdateEnquiryRequest struct {
	StudentName       *string `json:"studentName,omitempty"`
	StudentPhoneNo    *string `json:"studentPhoneNo,omitempty"`
	StudentAltPhoneNo *string `json:"studentAltPhoneNo,omitempty"`
	StudentEmail      *string `json:"studentEmail,omitempty" binding:"omitempty,email"`
	StudentAddress    *string `json:"studentAddress,omitempty"`
	GuardianName      *string `json:"guardianName,omitempty"`
	GuardianPhoneNo   *string `json:"guardianPhoneNo,omitempty"`
	FitMedically      *bool   `json:"fitMedically,omitempty"`
	MeetsHeightReq    *bool   `json:"meetsHeightRequirements,omitempty"`
	MeetsWeightReq    *bool   `json:"meetsWeightRequirements,omitempty"`
	MeetsVisionStd    *bool   `json:"meetsVisionStandards,omitempty"`
	CourseID          *string `json:"courseId,omitempty"`
}

// UpdateEnquiryStatusRequest moves an enquiry through its workflow.
type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending contacted converted cancelled"`
}
