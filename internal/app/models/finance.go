package models

import "time"

// Payment status values shared by fees and commissions.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// FeeReceipt records a student's fee payment against a course.
type FeeReceipt struct {
	ID              string    `json:"feeId" db:"fee_id"`
	StudentID       string    `json:"studentId" db:"student_id"`
	CourseID        string    `json:"courseId" db:"course_id"`
	PaymentNo       int       `json:"paymentNo" db:"payment_no"`
	PaymentMode     *string   `json:"paymentMode,omitempty" db:"payment_mode"`
	TransactionID   *string   `json:"transactionId,omitempty" db:"transaction_id"`
	TotalCourseFees float64   `json:"totalCourseFees" db:"total_course_fees"`
	AmountPaid      float64   `json:"amountPaid" db:"amount_paid"`
	AmountDue       float64   `json:"amountDue" db:"amount_due"`
	ReceiptFile     *string   `json:"receiptFile,omitempty" db:"receipt_file"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// Salary records one month's salary slip for a teacher.
type Salary struct {
	ID        string    `json:"salaryId" db:"salary_id"`
	TeacherID string    `json:"teacherId" db:"teacher_id"`
	Month     int       `json:"month" db:"month"`
	Year      int       `json:"year" db:"year"`
	Amount    float64   `json:"amount" db:"amount"`
	SlipFile  *string   `json:"slipFile,omitempty" db:"slip_file"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Commission records a counsellor's commission for a converted enquiry.
type Commission struct {
	ID                   string    `json:"commissionId" db:"commission_id"`
	CounsellorID         string    `json:"counsellorId" db:"counsellor_id"`
	EnquiryID            string    `json:"enquiryId" db:"enquiry_id"`
	StudentName          string    `json:"studentName" db:"student_name"`
	CourseID             string    `json:"courseId" db:"course_id"`
	CommissionPercentage float64   `json:"commissionPercentage" db:"commission_percentage"`
	CourseFees           float64   `json:"courseFees" db:"course_fees"`
	CommissionAmount     float64   `json:"commissionAmount" db:"commission_amount"`
	SlipFile             *string   `json:"slipFile,omitempty" db:"slip_file"`
	TransactionID        *string   `json:"transactionId,omitempty" db:"transaction_id"`
	PaymentStatus        string    `json:"paymentStatus" db:"payment_status"`
	MonthYear            string    `json:"monthYear" db:"month_year"` // format YYYY-MM
	CreatedAt            time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time `json:"updatedAt" db:"updated_at"`
}
