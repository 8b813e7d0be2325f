package auth

import (
	"strings"

	"venturepulse/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/profile", ShowProfilePage)
	auth.Post("/change-password", ChangePasswordAPI)

	// Account management (admin only)
	users := app.Group("/api/users")
	users.Use(AuthMiddleware)
	users.Use(AdminMiddleware)
	users.Post("/", RegisterUserAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - VenturePulse",
	}, "")
}

func ShowProfilePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	return c.Render("auth/profile", fiber.Map{
		"Title":       "Profile - VenturePulse",
		"CurrentPage": "profile",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"IsAdmin":     user.IsAdmin,
	})
}

// AuthMiddleware validates JWT and sets user context
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	// Check if this is an API request
	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		// For web pages, redirect to login
		return c.Redirect("/auth/login")
	}

	// Validate JWT token
	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		// For web pages, redirect to login
		return c.Redirect("/auth/login")
	}

	// Create user object from claims
	user := &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsAdmin:   claims.IsAdmin,
		CompanyID: claims.CompanyID,
		IsActive:  true,
	}

	// Set user context
	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("is_admin", user.IsAdmin)
	c.Locals("company_id", user.CompanyID)
	c.Locals("user", user)

	return c.Next()
}

// AdminMiddleware allows only the investor account through. Authorization is
// a boundary check here; the services below it never re-check roles.
func AdminMiddleware(c *fiber.Ctx) error {
	isAdmin, ok := c.Locals("is_admin").(bool)
	if ok && isAdmin {
		return c.Next()
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	return c.Status(403).Render("error", fiber.Map{
		"Title":        "Access Forbidden - VenturePulse",
		"CurrentPage":  "",
		"ErrorCode":    "403",
		"ErrorTitle":   "Access Forbidden",
		"ErrorMessage": "You don't have permission to access this resource.",
		"user":         c.Locals("user"),
	})
}

// CompanyScope resolves which company a request may touch: admins may pass an
// explicit company id, founders are always locked to their own.
func CompanyScope(c *fiber.Ctx, requested string) (string, error) {
	isAdmin, _ := c.Locals("is_admin").(bool)
	if isAdmin && requested != "" {
		return requested, nil
	}

	companyID, ok := c.Locals("company_id").(*string)
	if !ok || companyID == nil {
		return "", fiber.NewError(fiber.StatusForbidden, "account is not linked to a company")
	}
	return *companyID, nil
}
