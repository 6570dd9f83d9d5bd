package middleware

import (
	"github.com/AdamLouly/quizzapp/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that loads the authenticated principal and
// checks it holds one of the required roles. The loaded user is stored under
// "authUser" so handlers never re-trust token claims or request bodies for
// role and tenant.
func RequireRole(db *gorm.DB, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: User ID not found",
				"data":    nil,
			})
		}

		var user models.User
		if err := db.Where("id = ? AND is_deleted = ? AND status = ?", userID, false, "ACTIVE").First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"status":  false,
					"message": "User not found!",
					"data":    nil,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  false,
				"message": "Server error while checking permissions!",
				"data":    nil,
			})
		}

		if len(roles) > 0 && !hasRole(user.Role, roles) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		c.Locals("authUser", &user)
		return c.Next()
	}
}

// AuthUser returns the principal loaded by RequireRole
func AuthUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("authUser").(*models.User)
	return user
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
