package models

import "time"

// UserRole identifies which user table an account lives in.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleStudent    UserRole = "student"
	RoleTeacher    UserRole = "teacher"
	RoleCounsellor UserRole = "counsellor"
)

// Admin represents a platform administrator account.
type Admin struct {
	ID        string    `json:"adminId" db:"admin_id"`
	FullName  string    `json:"fullName" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	PhoneNo   *string   `json:"phoneNo,omitempty" db:"phone_no"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Student represents an enrolled student.
type Student struct {
	ID               string    `json:"studentId" db:"student_id"`
	FullName         string    `json:"fullName" db:"full_name"`
	PhoneNo          string    `json:"phoneNo" db:"phone_no"`
	Email            string    `json:"email" db:"email"`
	Address          string    `json:"address" db:"address"`
	GuardianName     string    `json:"guardianName" db:"guardian_name"`
	GuardianMobileNo string    `json:"guardianMobileNo" db:"guardian_mobile_no"`
	GuardianEmail    *string   `json:"guardianEmail,omitempty" db:"guardian_email"`
	CourseID         string    `json:"courseId" db:"course_id"`
	Interests        []string  `json:"interests,omitempty" db:"interests"`
	Hobbies          []string  `json:"hobbies,omitempty" db:"hobbies"`
	ProfilePhoto     *string   `json:"profilePhoto,omitempty" db:"profile_photo"`
	Password         string    `json:"-" db:"password"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`

	// Populated from the referenced course when present.
	CourseName *string `json:"courseName,omitempty"`
}

// Teacher represents a teaching staff member, including payroll details.
type Teacher struct {
	ID              string    `json:"teacherId" db:"teacher_id"`
	FullName        string    `json:"fullName" db:"full_name"`
	PhoneNo         string    `json:"phoneNo" db:"phone_no"`
	AltPhoneNo      *string   `json:"altPhoneNo,omitempty" db:"alt_phone_no"`
	Email           string    `json:"email" db:"email"`
	Address         *string   `json:"address,omitempty" db:"address"`
	Qualification   *string   `json:"qualification,omitempty" db:"qualification"`
	Experience      *string   `json:"experience,omitempty" db:"experience"`
	CoursesAssigned []string  `json:"coursesAssigned,omitempty" db:"courses_assigned"`
	ProfilePhoto    *string   `json:"profilePhoto,omitempty" db:"profile_photo"`
	BankAccountNo   *string   `json:"bankAccountNo,omitempty" db:"bank_account_no"`
	BankAccountName *string   `json:"bankAccountName,omitempty" db:"bank_account_name"`
	BankBranchName  *string   `json:"bankBranchName,omitempty" db:"bank_branch_name"`
	IFSCCode        *string   `json:"ifscCode,omitempty" db:"ifsc_code"`
	UPIID           *string   `json:"upiId,omitempty" db:"upi_id"`
	MonthlySalary   *float64  `json:"monthlySalary,omitempty" db:"monthly_salary"`
	Password        string    `json:"-" db:"password"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// Counsellor represents an admissions counsellor earning commissions.
type Counsellor struct {
	ID                   string    `json:"counsellorId" db:"counsellor_id"`
	FullName             string    `json:"fullName" db:"full_name"`
	PhoneNo              string    `json:"phoneNo" db:"phone_no"`
	Email                string    `json:"email" db:"email"`
	Address              *string   `json:"address,omitempty" db:"address"`
	CommissionPercentage float64   `json:"commissionPercentage" db:"commission_percentage"`
	ProfilePhoto         *string   `json:"profilePhoto,omitempty" db:"profile_photo"`
	Password             string    `json:"-" db:"password"`
	CreatedAt            time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time `json:"updatedAt" db:"updated_at"`
}
