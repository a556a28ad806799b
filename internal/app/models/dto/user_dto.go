package dto

// LoginRequest is shared by all four user kinds.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token pair and the authenticated account.
type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresIn    int         `json:"expiresIn"`
	User         interface{} `json:"user"`
}

// RefreshTokenRequest exchanges a refresh token for a new token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// BulkDeleteRequest deletes several records of one entity type by id.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

// BulkDeleteResult reports how many of the requested ids were deleted.
// IDs that did not match a record are skipped, not errored.
type BulkDeleteResult struct {
	Requested int   `json:"requested"`
	Deleted   int64 `json:"deleted"`
}

// CreateAdminRequest creates an administrator account.
type CreateAdminRequest struct {
	FullName string  `json:"fullName" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	PhoneNo  *string `json:"phoneNo,omitempty"`
	Password string  `json:"password" binding:"required,min=8"`
}

// UpdateAdminRequest partially updates an administrator account.
type UpdateAdminRequest struct {
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	PhoneNo  *string `json:"phoneNo,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}

// CreateStudentRequest is bound from a multipart form; the profile photo
// arrives as a separate file part.
type CreateStudentRequest struct {
	FullName         string   `form:"fullName" binding:"required"`
	PhoneNo          string   `form:"phoneNo" binding:"required"`
	Email            string   `form:"email" binding:"required,email"`
	Address          string   `form:"address" binding:"required"`
	GuardianName     string   `form:"guardianName" binding:"required"`
	GuardianMobileNo string   `form:"guardianMobileNo" binding:"required"`
	GuardianEmail    *string  `form:"guardianEmail" binding:"omitempty,email"`
	CourseID         string   `form:"courseId" binding:"required"`
	Interests        []string `form:"interests"`
	Hobbies          []string `form:"hobbies"`
	Password         string   `form:"password" binding:"required,min=8"`
}

// UpdateStudentRequest partially updates a student; only provided fields are
// written.
type UpdateStudentRequest struct {
	FullName         *string  `form:"fullName"`
	PhoneNo          *string  `form:"phoneNo"`
	Email            *string  `form:"email" binding:"omitempty,email"`
	Address          *string  `form:"address"`
	GuardianName     *string  `form:"guardianName"`
	GuardianMobileNo *string  `form:"guardianMobileNo"`
	GuardianEmail    *string  `form:"guardianEmail" binding:"omitempty,email"`
	CourseID         *string  `form:"courseId"`
	Interests        []string `form:"interests"`
	Hobbies          []string `form:"hobbies"`
	Password         *string  `form:"password" binding:"omitempty,min=8"`
}

// CreateTeacherRequest is bound from a multipart form.
type CreateTeacherRequest struct {
	FullName        string   `form:"fullName" binding:"required"`
	PhoneNo         string   `form:"phoneNo" binding:"required"`
	AltPhoneNo      *string  `form:"altPhoneNo"`
	Email           string   `form:"email" binding:"required,email"`
	Address         *string  `form:"address"`
	Qualification   *string  `form:"qualification"`
	Experience      *string  `form:"experience"`
	CoursesAssigned []string `form:"coursesAssigned"`
	BankAccountNo   *string  `form:"bankAccountNo"`
	BankAccountName *string  `form:"bankAccountName"`
	BankBranchName  *string  `form:"bankBranchName"`
	IFSCCode        *string  `form:"ifscCode"`
	UPIID           *string  `form:"upiId"`
	MonthlySalary   *float64 `form:"monthlySalary" binding:"omitempty,gte=0"`
	Password        string   `form:"password" binding:"required,min=8"`
}

// UpdateTeacherRequest partially updates a teacher.
type UpdateTeacherRequest struct {
	FullName        *string  `form:"fullName"`
	PhoneNo         *string  `form:"phoneNo"`
	AltPhoneNo      *string  `form:"altPhoneNo"`
	Email           *string  `form:"email" binding:"omitempty,email"`
	Address         *string  `form:"address"`
	Qualification   *string  `form:"qualification"`
	Experience      *string  `form:"experience"`
	CoursesAssigned []string `form:"coursesAssigned"`
	BankAccountNo   *string  `form:"bankAccountNo"`
	BankAccountName *string  `form:"bankAccountName"`
	BankBranchName  *string  `form:"bankBranchName"`
	IFSCCode        *string  `form:"ifscCode"`
	UPIID           *string  `form:"upiId"`
	MonthlySalary   *float64 `form:"monthlySalary" binding:"omitempty,gte=0"`
	Password        *string  `form:"password" binding:"omitempty,min=8"`
}

// CreateCounsellorRequest is bound from a multipart form.
type CreateCounsellorRequest struct {
	FullName             string  `form:"fullName" binding:"required"`
	PhoneNo              string  `form:"phoneNo" binding:"required"`
	Email                string  `form:"email" binding:"required,email"`
	Address              *string `form:"address"`
	CommissionPercentage float64 `form:"commissionPercentage" binding:"gte=0,lte=100"`
	Password             string  `form:"password" binding:"required,min=8"`
}

// UpdateCounsellorRequest partially updates a counsellor.
type UpdateCounsellorRequest struct {
	FullName             *string  `form:"fullName"`
	PhoneNo              *string  `form:"phoneNo"`
	Email                *string  `form:"email" binding:"omitempty,email"`
	Address              *string  `form:"address"`
	CommissionPercentage *float64 `form:"commissionPercentage" binding:"omitempty,gte=0,lte=100"`
	Password             *string  `form:"password" binding:"omitempty,min=8"`
}
