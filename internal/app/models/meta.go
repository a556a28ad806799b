package models

import "github.com/vwings/eduadmin/internal/pkg/entityid"

// Identifier specs, one per entity type. Prefix and pad width are fixed per
// type; the numeric suffix widens past the pad width instead of wrapping.
var (
	AdminIDSpec       = entityid.Spec{Kind: "admin", Prefix: "ADM", Width: 4}
	StudentIDSpec     = entityid.Spec{Kind: "student", Prefix: "STU", Width: 4}
	TeacherIDSpec     = entityid.Spec{Kind: "teacher", Prefix: "TCH", Width: 4}
	CounsellorIDSpec  = entityid.Spec{Kind: "counsellor", Prefix: "CNS", Width: 4}
	CourseIDSpec      = entityid.Spec{Kind: "course", Prefix: "CRS", Width: 4}
	ClassroomIDSpec   = entityid.Spec{Kind: "classroom", Prefix: "CLS", Width: 4}
	ChatMessageIDSpec = entityid.Spec{Kind: "chat_message", Prefix: "MSG", Width: 6}
	FeeIDSpec         = entityid.Spec{Kind: "fee", Prefix: "FEE", Width: 4}
	SalaryIDSpec      = entityid.Spec{Kind: "salary", Prefix: "SAL", Width: 4}
	CommissionIDSpec  = entityid.Spec{Kind: "commission", Prefix: "COM", Width: 4}
	AdmissionCodeIDSpec    = entityid.Spec{Kind: "admission_code", Prefix: "ADC", Width: 4}
	AdmissionEnquiryIDSpec = entityid.Spec{Kind: "admission_enquiry", Prefix: "ENQ", Width: 4}
	AnnouncementIDSpec     = entityid.Spec{Kind: "announcement", Prefix: "ANN", Width: 4}
	AdvertisementIDSpec    = entityid.Spec{Kind: "advertisement", Prefix: "ADV", Width: 4}
	AboutUsIDSpec          = entityid.Spec{Kind: "about_us", Prefix: "ABT", Width: 4}
	HelpCenterQueryIDSpec  = entityid.Spec{Kind: "help_center_query", Prefix: "HLP", Width: 4}
)

// EntityMeta binds an identifier spec to its table so the startup sequence
// sync can walk every entity type.
type EntityMeta struct {
	Spec     entityid.Spec
	Table    string
	IDColumn string
}

// Registry lists every entity type persisted by the store.
var Registry = []EntityMeta{
	{Spec: AdminIDSpec, Table: "admins", IDColumn: "admin_id"},
	{Spec: StudentIDSpec, Table: "students", IDColumn: "student_id"},
	{Spec: TeacherIDSpec, Table: "teachers", IDColumn: "teacher_id"},
	{Spec: CounsellorIDSpec, Table: "counsellors", IDColumn: "counsellor_id"},
	{Spec: CourseIDSpec, Table: "courses", IDColumn: "course_id"},
	{Spec: ClassroomIDSpec, Table: "classrooms", IDColumn: "classroom_id"},
	{Spec: ChatMessageIDSpec, Table: "classroom_chat_messages", IDColumn: "message_id"},
	{Spec: FeeIDSpec, Table: "fees_receipts", IDColumn: "fee_id"},
	{Spec: SalaryIDSpec, Table: "salaries", IDColumn: "salary_id"},
	{Spec: CommissionIDSpec, Table: "commissions", IDColumn: "commission_id"},
	{Spec: AdmissionCodeIDSpec, Table: "admission_codes", IDColumn: "admission_code_id"},
	{Spec: AdmissionEnquiryIDSpec, Table: "admission_enquiries", IDColumn: "enquiry_id"},
	{Spec: AnnouncementIDSpec, Table: "announcements", IDColumn: "announcement_id"},
	{Spec: AdvertisementIDSpec, Table: "advertisements", IDColumn: "advertisement_id"},
	{Spec: AboutUsIDSpec, Table: "about_us_sections", IDColumn: "section_id"},
	{Spec: HelpCenterQueryIDSpec, Table: "help_center_queries", IDColumn: "query_id"},
}
