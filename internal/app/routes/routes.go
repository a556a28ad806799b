package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vwings/eduadmin/internal/app/controllers"
	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/middleware"
	"github.com/vwings/eduadmin/internal/pkg/auth"
	"github.com/vwings/eduadmin/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	classroomController *controllers.ClassroomController,
	financeController *controllers.FinanceController,
	admissionController *controllers.AdmissionController,
	contentController *controllers.ContentController,
	wsHandler *websocket.Handler,
	jwtService *auth.JWTService,
) {
	admin := string(models.RoleAdmin)
	teacher := string(models.RoleTeacher)
	counsellor := string(models.RoleCounsellor)

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/admin/login", authController.LoginAdmin)
		authGroup.POST("/student/login", authController.LoginStudent)
		authGroup.POST("/teacher/login", authController.LoginTeacher)
		authGroup.POST("/counsellor/login", authController.LoginCounsellor)
		authGroup.POST("/refresh", authController.Refresh)
	}

	// Help queries can be submitted without an account (contact form)
	v1.POST("/help-queries", contentController.CreateHelpQuery)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(middleware.JWTAuth(jwtService))

	// Admins: managed by admins only
	admins := authenticated.Group("/admins")
	admins.Use(middleware.RoleRequired(admin))
	{
		admins.POST("", userController.CreateAdmin)
		admins.GET("", userController.ListAdmins)
		admins.GET("/:id", userController.GetAdmin)
		admins.PUT("/:id", userController.UpdateAdmin)
		admins.DELETE("/:id", userController.DeleteAdmin)
	}

	// Students: reads are open to staff, mutations to admins
	students := authenticated.Group("/students")
	{
		students.GET("", userController.ListStudents)
		students.GET("/:id", userController.GetStudent)

		studentsAdmin := students.Group("")
		studentsAdmin.Use(middleware.RoleRequired(admin))
		{
			studentsAdmin.POST("", userController.CreateStudent)
			studentsAdmin.PUT("/:id", userController.UpdateStudent)
			studentsAdmin.DELETE("/:id", userController.DeleteStudent)
			studentsAdmin.POST("/bulk-delete", userController.BulkDeleteStudents)
		}
	}

	teachers := authenticated.Group("/teachers")
	{
		teachers.GET("", userController.ListTeachers)
		teachers.GET("/:id", userController.GetTeacher)

		teachersAdmin := teachers.Group("")
		teachersAdmin.Use(middleware.RoleRequired(admin))
		{
			teachersAdmin.POST("", userController.CreateTeacher)
			teachersAdmin.PUT("/:id", userController.UpdateTeacher)
			teachersAdmin.DELETE("/:id", userController.DeleteTeacher)
			teachersAdmin.POST("/bulk-delete", userController.BulkDeleteTeachers)
		}
	}

	counsellors := authenticated.Group("/counsellors")
	{
		counsellors.GET("", userController.ListCounsellors)
		counsellors.GET("/:id", userController.GetCounsellor)

		counsellorsAdmin := counsellors.Group("")
		counsellorsAdmin.Use(middleware.RoleRequired(admin))
		{
			counsellorsAdmin.POST("", userController.CreateCounsellor)
			counsellorsAdmin.PUT("/:id", userController.UpdateCounsellor)
			counsellorsAdmin.DELETE("/:id", userController.DeleteCounsellor)
		}
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)

		coursesAdmin := courses.Group("")
		coursesAdmin.Use(middleware.RoleRequired(admin))
		{
			coursesAdmin.POST("", courseController.CreateCourse)
			coursesAdmin.PUT("/:id", courseController.UpdateCourse)
			coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
		}
	}

	classrooms := authenticated.Group("/classrooms")
	{
		classrooms.GET("", classroomController.ListClassrooms)
		classrooms.GET("/:id", classroomController.GetClassroom)

		// Chat: any authenticated member may read and post
		classrooms.GET("/:id/messages", classroomController.ListMessages)
		classrooms.POST("/:id/messages", classroomController.PostMessage)
		classrooms.GET("/:id/chat/ws", wsHandler.HandleConnection)

		// Classroom management: admins and teachers
		classroomsStaff := classrooms.Group("")
		classroomsStaff.Use(middleware.RoleRequired(admin, teacher))
		{
			classroomsStaff.POST("", classroomController.CreateClassroom)
			classroomsStaff.PUT("/:id", classroomController.UpdateClassroom)
			classroomsStaff.DELETE("/:id", classroomController.DeleteClassroom)
			classroomsStaff.POST("/:id/members", classroomController.AddMember)
			classroomsStaff.DELETE("/:id/members/:userId", classroomController.RemoveMember)
			classroomsStaff.POST("/:id/admins", classroomController.AddAdmin)
			classroomsStaff.DELETE("/:id/admins/:userId", classroomController.RemoveAdmin)
			classroomsStaff.DELETE("/:id/messages/:messageId", classroomController.DeleteMessage)
		}
	}

	// Finance: admin only
	fees := authenticated.Group("/fees")
	fees.Use(middleware.RoleRequired(admin))
	{
		fees.POST("", financeController.CreateFee)
		fees.GET("", financeController.ListFees)
		fees.GET("/:id", financeController.GetFee)
		fees.PUT("/:id", financeController.UpdateFee)
		fees.DELETE("/:id", financeController.DeleteFee)
	}

	salaries := authenticated.Group("/salaries")
	salaries.Use(middleware.RoleRequired(admin))
	{
		salaries.POST("", financeController.CreateSalary)
		salaries.GET("", financeController.ListSalaries)
		salaries.GET("/:id", financeController.GetSalary)
		salaries.PUT("/:id", financeController.UpdateSalary)
		salaries.DELETE("/:id", financeController.DeleteSalary)
	}

	commissions := authenticated.Group("/commissions")
	commissions.Use(middleware.RoleRequired(admin))
	{
		commissions.POST("", financeController.CreateCommission)
		commissions.GET("", financeController.ListCommissions)
		commissions.GET("/:id", financeController.GetCommission)
		commissions.PUT("/:id", financeController.UpdateCommission)
		commissions.DELETE("/:id", financeController.DeleteCommission)
	}

	// Admission codes: admin only
	codes := authenticated.Group("/admission-codes")
	codes.Use(middleware.RoleRequired(admin))
	{
		codes.POST("", admissionController.CreateCode)
		codes.GET("", admissionController.ListCodes)
		codes.GET("/:id", admissionController.GetCode)
		codes.PUT("/:id", admissionController.UpdateCode)
		codes.DELETE("/:id", admissionController.DeleteCode)
	}

	// Enquiries: counsellors work them, admins oversee
	enquiries := authenticated.Group("/enquiries")
	enquiries.Use(middleware.RoleRequired(admin, counsellor))
	{
		enquiries.POST("", admissionController.CreateEnquiry)
		enquiries.GET("", admissionController.ListEnquiries)
		enquiries.GET("/:id", admissionController.GetEnquiry)
		enquiries.PUT("/:id", admissionController.UpdateEnquiry)
		enquiries.PATCH("/:id/status", admissionController.UpdateEnquiryStatus)
		enquiries.DELETE("/:id", admissionController.DeleteEnquiry)
	}

	// Content: reads open to all authenticated users, mutations admin only
	announcements := authenticated.Group("/announcements")
	{
		announcements.GET("", contentController.ListAnnouncements)
		announcements.GET("/:id", contentController.GetAnnouncement)

		announcementsAdmin := announcements.Group("")
		announcementsAdmin.Use(middleware.RoleRequired(admin))
		{
			announcementsAdmin.POST("", contentController.CreateAnnouncement)
			announcementsAdmin.PUT("/:id", contentController.UpdateAnnouncement)
			announcementsAdmin.DELETE("/:id", contentController.DeleteAnnouncement)
		}
	}

	advertisements := authenticated.Group("/advertisements")
	{
		advertisements.GET("", contentController.ListAdvertisements)
		advertisements.GET("/:id", contentController.GetAdvertisement)

		advertisementsAdmin := advertisements.Group("")
		advertisementsAdmin.Use(middleware.RoleRequired(admin))
		{
			advertisementsAdmin.POST("", contentController.CreateAdvertisement)
			advertisementsAdmin.PUT("/:id", contentController.UpdateAdvertisement)
			advertisementsAdmin.DELETE("/:id", contentController.DeleteAdvertisement)
		}
	}

	aboutUs := authenticated.Group("/about-us")
	{
		aboutUs.GET("", contentController.ListAboutUs)
		aboutUs.GET("/:id", contentController.GetAboutUs)

		aboutUsAdmin := aboutUs.Group("")
		aboutUsAdmin.Use(middleware.RoleRequired(admin))
		{
			aboutUsAdmin.POST("", contentController.CreateAboutUs)
			aboutUsAdmin.PUT("/:id", contentController.UpdateAboutUs)
			aboutUsAdmin.DELETE("/:id", contentController.DeleteAboutUs)
		}
	}

	helpQueries := authenticated.Group("/help-queries")
	helpQueries.Use(middleware.RoleRequired(admin))
	{
		helpQueries.GET("", contentController.ListHelpQueries)
		helpQueries.GET("/:id", contentController.GetHelpQuery)
		helpQueries.PUT("/:id", contentController.UpdateHelpQuery)
		helpQueries.DELETE("/:id", contentController.DeleteHelpQuery)
	}
}
