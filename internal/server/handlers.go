package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/VinceRamirez1998/fuel-and-conquer/internal/auth"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/export"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/planner"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/profile"

	"github.com/gin-gonic/gin"
)

// Pages

func (s *Server) handleIndexPage(c *gin.Context) {
	// A visitor with a live session goes straight to the dashboard.
	if s.sessionFromCookie(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", nil)
}

func (s *Server) handleDashboardPage(c *gin.Context) {
	user := currentUser(c)
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"User": user})
}

func (s *Server) handleForgotPasswordPage(c *gin.Context) {
	c.HTML(http.StatusOK, "forgot_password.html", nil)
}

func (s *Server) handleResetPasswordPage(c *gin.Context) {
	c.HTML(http.StatusOK, "reset_password.html", gin.H{"Code": c.Param("code")})
}

// Authentication API

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		return
	}

	cred, err := s.identity.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.Printf("Sign-in failed for %s: %v", req.Email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.UserMessage(err)})
		return
	}

	user, err := s.users.GetByEmail(c.Request.Context(), cred.Email)
	if err != nil {
		log.Printf("User store lookup failed for %s: %v", cred.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": auth.GenericAuthMessage})
		return
	}
	if user == nil {
		// Authenticated with the provider but no store record yet.
		user = &auth.User{ID: cred.LocalID, Email: cred.Email}
	}

	token, err := s.sessions.Issue(*user)
	if err != nil {
		log.Printf("Failed to issue session for %s: %v", cred.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": auth.GenericAuthMessage})
		return
	}

	c.SetCookie(auth.CookieName, token, int(s.sessions.TTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}})
}

func (s *Server) handleLogout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out."})
}

type passwordResetRequest struct {
	Email string `json:"email" binding:"required"`
}

func (s *Server) handlePasswordReset(c *gin.Context) {
	var req passwordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required."})
		return
	}

	if err := s.identity.SendPasswordReset(c.Request.Context(), req.Email); err != nil {
		log.Printf("Password reset request failed for %s: %v", req.Email, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": auth.UserMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent. Check your inbox."})
}

type passwordResetConfirmRequest struct {
	Code        string `json:"oob_code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (s *Server) handlePasswordResetConfirm(c *gin.Context) {
	var req passwordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reset code and new password are required."})
		return
	}

	if err := s.identity.ConfirmPasswordReset(c.Request.Context(), req.Code, req.NewPassword); err != nil {
		log.Printf("Password reset confirmation failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": auth.UserMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated. You can now sign in."})
}

func (s *Server) handleMe(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}})
}

// Plan API

func (s *Server) handleGeneratePlan(c *gin.Context) {
	var sub profile.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission payload."})
		return
	}
	if err := validateSubmission(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := s.planner.GeneratePlan(c.Request.Context(), sub)
	if err != nil {
		if errors.Is(err, planner.ErrGenerationFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Plan generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": planner.ErrGenerationFailed.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// validateSubmission enforces the fields the generation prompt cannot work
// without. Family members inherit the same floor as the primary record.
func validateSubmission(sub *profile.Submission) error {
	if err := validateRecord(&sub.Primary, "primary user"); err != nil {
		return err
	}
	if !sub.IncludeFamily {
		return nil
	}
	for i := range sub.Members {
		who := sub.Members[i].Name
		if who == "" {
			who = fmt.Sprintf("family member %d", i+1)
		}
		if err := validateRecord(&sub.Members[i].Record, who); err != nil {
			return err
		}
	}
	return nil
}

func validateRecord(r *profile.Record, who string) error {
	switch {
	case r.Sex == "":
		return fmt.Errorf("Please select a sex for the %s.", who)
	case r.Age <= 0 || r.Age > 120:
		return fmt.Errorf("Please enter a valid age for the %s.", who)
	case r.Weight <= 0:
		return fmt.Errorf("Please enter a current weight for the %s.", who)
	case r.TargetWeight <= 0:
		return fmt.Errorf("Please enter a target weight for the %s.", who)
	case r.Goal == "":
		return fmt.Errorf("Please choose a goal for the %s.", who)
	}
	return nil
}

func (s *Server) handleExportPlan(c *gin.Context) {
	var plan planner.Plan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan payload."})
		return
	}

	now := s.now()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(now)))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(export.HTML(&plan, now)))
}

func (s *Server) handleClipboardPlan(c *gin.Context) {
	var plan planner.Plan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan payload."})
		return
	}
	c.JSON(http.StatusOK, export.Clipboard(&plan, s.now()))
}
