package classController

import (
	"log"

	"github.com/AdamLouly/quizzapp/middleware"
	"github.com/AdamLouly/quizzapp/models"
	classValidator "github.com/AdamLouly/quizzapp/validators/class"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// ListClasses lists the tenant's classes. Teachers see the classes they
// teach, admins see every class of the tenant.
func (ctrl *Controller) ListClasses(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)
	offset := c.Locals("offset").(int)
	limit := c.Locals("limit").(int)

	db := ctrl.DB.Model(&models.Class{}).Where("client_id = ? AND is_deleted = ?", user.ClientID, false)
	if user.Role == "TEACHER" {
		db = db.Where("teacher_id = ?", user.ID)
	}

	var total int64
	db.Count(&total)

	var classes []models.Class
	if err := db.Preload("Students").Offset(offset).Limit(limit).Order("created_at desc").Find(&classes).Error; err != nil {
		log.Printf("Error fetching classes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	for i := range classes {
		for j := range classes[i].Students {
			classes[i].Students[j].Password = ""
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", fiber.Map{
		"classes":    classes,
		"totalCount": total,
		"offset":     offset,
		"limit":      limit,
	})
}

// GetClass fetches one class with its roster
func (ctrl *Controller) GetClass(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
	}

	var class models.Class
	if err := ctrl.DB.Preload("Students").
		Where("id = ? AND client_id = ? AND is_deleted = ?", classID, user.ClientID, false).
		First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	for i := range class.Students {
		class.Students[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class fetched successfully!", class)
}

// CreateClass creates a class with a teacher and an optional initial roster
func (ctrl *Controller) CreateClass(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	reqData, ok := c.Locals("validatedClass").(*classValidator.CreateClassRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	teacher, err := ctrl.resolveTeacher(reqData.TeacherID, user.ClientID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Teacher not found in your organization!", nil)
	}

	students, err := ctrl.resolveStudents(reqData.StudentIDs, user.ClientID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "One or more students not found in your organization!", nil)
	}

	class := models.Class{
		Name:      reqData.Name,
		TeacherID: teacher.ID,
		ClientID:  user.ClientID,
		Students:  students,
	}

	if err := ctrl.DB.Create(&class).Error; err != nil {
		log.Printf("Error creating class: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class created successfully!", class)
}

// UpdateClass renames a class, reassigns its teacher or replaces its roster
func (ctrl *Controller) UpdateClass(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
	}

	var class models.Class
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?", classID, user.ClientID, false).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	reqData, ok := c.Locals("validatedClassUpdate").(*classValidator.UpdateClassRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		class.Name = reqData.Name
	}
	if reqData.TeacherID != 0 {
		teacher, err := ctrl.resolveTeacher(reqData.TeacherID, user.ClientID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Teacher not found in your organization!", nil)
		}
		class.TeacherID = teacher.ID
	}

	if err := ctrl.DB.Save(&class).Error; err != nil {
		log.Printf("Error updating class %d: %v", class.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}

	// Replace the roster only when student_ids was present in the body
	if reqData.StudentIDs != nil {
		students, err := ctrl.resolveStudents(*reqData.StudentIDs, user.ClientID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "One or more students not found in your organization!", nil)
		}
		if err := ctrl.DB.Model(&class).Association("Students").Replace(students); err != nil {
			log.Printf("Error replacing roster for class %d: %v", class.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class roster!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class updated successfully!", class)
}

// DeleteClass soft deletes a class
func (ctrl *Controller) DeleteClass(c *fiber.Ctx) error {
	user := middleware.AuthUser(c)

	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
	}

	var class models.Class
	if err := ctrl.DB.Where("id = ? AND client_id = ? AND is_deleted = ?", classID, user.ClientID, false).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	class.IsDeleted = true
	if err := ctrl.DB.Save(&class).Error; err != nil {
		log.Printf("Error deleting class %d: %v", class.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class deleted successfully!", nil)
}

// resolveTeacher checks the referenced teacher exists with the right role and tenant
func (ctrl *Controller) resolveTeacher(teacherID, clientID uint) (*models.User, error) {
	var teacher models.User
	err := ctrl.DB.Where("id = ? AND client_id = ? AND role = ? AND is_deleted = ?", teacherID, clientID, "TEACHER", false).
		First(&teacher).Error
	return &teacher, err
}

// resolveStudents checks every referenced student exists with the right role and tenant
func (ctrl *Controller) resolveStudents(studentIDs []uint, clientID uint) ([]models.User, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}
	var students []models.User
	err := ctrl.DB.Where("id IN ? AND client_id = ? AND role = ? AND is_deleted = ?", studentIDs, clientID, "STUDENT", false).
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	if len(students) != len(studentIDs) {
		return nil, gorm.ErrRecordNotFound
	}
	return students, nil
}
