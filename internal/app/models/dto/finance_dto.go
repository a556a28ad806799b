package dto

// CreateFeeRequest records a fee payment; the receipt arrives as a file part.
type CreateFeeRequest struct {
	StudentID       string  `form:"studentId" binding:"required"`
	CourseID        string  `form:"courseId" binding:"required"`
	PaymentNo       int     `form:"paymentNo" binding:"gte=0"`
	PaymentMode     *string `form:"paymentMode"`
	TransactionID   *string `form:"transactionId"`
	TotalCourseFees float64 `form:"totalCourseFees" binding:"gte=0"`
	AmountPaid      float64 `form:"amountPaid" binding:"gte=0"`
}

// UpdateFeeRequest partially updates a fee receipt.
type UpdateFeeRequest struct {
	PaymentNo       *int     `form:"paymentNo" binding:"omitempty,gte=0"`
	PaymentMode     *string  `form:"paymentMode"`
	TransactionID   *string  `form:"transactionId"`
	TotalCourseFees *float64 `form:"totalCourseFees" binding:"omitempty,gte=0"`
	AmountPaid      *float64 `form:"amountPaid" binding:"omitempty,gte=0"`
}

// CreateSalaryRequest records a month's salary; the slip arrives as a file
// part.
type CreateSalaryRequest struct {
	TeacherID string  `form:"teacherId" binding:"required"`
	Month     int     `form:"month" binding:"required,gte=1,lte=12"`
	Year      int     `form:"year" binding:"required,gte=2000"`
	Amount    float64 `form:"amount" binding:"gte=0"`
}

// UpdateSalaryRequest partially updates a salary record.
type UpdateSalaryRequest struct {
	Month  *int     `form:"month" binding:"omitempty,gte=1,lte=12"`
	Year   *int     `form:"year" binding:"omitempty,gte=2000"`
	Amount *float64 `form:"amount" binding:"omitempty,gte=0"`
}

// CreateCommissionRequest records a counsellor commission; the slip arrives
// as a file part.
type CreateCommissionRequest struct {
	CounsellorID         string  `form:"counsellorId" binding:"required"`
	EnquiryID            string  `form:"enquiryId" binding:"required"`
	StudentName          string  `form:"studentName" binding:"required"`
	CourseID             string  `form:"courseId" binding:"required"`
	CommissionPercentage float64 `form:"commissionPercentage" binding:"gte=0,lte=100"`
	CourseFees           float64 `form:"courseFees" binding:"gte=0"`
	MonthYear            string  `form:"monthYear" binding:"required,len=7"` // YYYY-MM
}

// UpdateCommissionRequest partially updates a commission record.
type UpdateCommissionRequest struct {
	TransactionID        *string  `form:"transactionId"`
	PaymentStatus        *string  `form:"paymentStatus" binding:"omitempty,oneof=pending paid"`
	CommissionPercentage *float64 `form:"commissionPercentage" binding:"omitempty,gte=0,lte=100"`
	CourseFees           *float64 `form:"courseFees" binding:"omitempty,gte=0"`
	MonthYear            *string  `form:"monthYear" binding:"omitempty,len=7"`
}
