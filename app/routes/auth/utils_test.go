package auth

import (
	"testing"
)

func TestJWTRoundTripCarriesSessionID(t *testing.T) {
	companyID := "11111111-1111-1111-1111-111111111111"
	sessionID := GenerateSessionID().String()

	token, err := GenerateJWT("user-1", sessionID, "founder@acme.io", "Ada", "Lovelace", false, &companyID)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}

	if claims.SessionID != sessionID {
		t.Errorf("SessionID = %q, want %q", claims.SessionID, sessionID)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if claims.CompanyID == nil || *claims.CompanyID != companyID {
		t.Errorf("CompanyID = %v, want %q", claims.CompanyID, companyID)
	}
}

func TestValidateNewUser(t *testing.T) {
	companyID := "22222222-2222-2222-2222-222222222222"
	blank := "   "

	tests := []struct {
		name    string
		req     RegisterUserRequest
		wantErr bool
	}{
		{
			name: "valid founder",
			req:  RegisterUserRequest{Email: "founder@acme.io", Password: "longenough", FirstName: "Ada", LastName: "Lovelace", CompanyID: &companyID},
		},
		{
			name: "valid admin without company",
			req:  RegisterUserRequest{Email: "partner@fund.vc", Password: "longenough", FirstName: "Grace", LastName: "Hopper", IsAdmin: true},
		},
		{
			name:    "founder without company",
			req:     RegisterUserRequest{Email: "founder@acme.io", Password: "longenough", FirstName: "Ada", LastName: "Lovelace"},
			wantErr: true,
		},
		{
			name:    "founder with blank company id",
			req:     RegisterUserRequest{Email: "founder@acme.io", Password: "longenough", FirstName: "Ada", LastName: "Lovelace", CompanyID: &blank},
			wantErr: true,
		},
		{
			name:    "short password",
			req:     RegisterUserRequest{Email: "founder@acme.io", Password: "short", FirstName: "Ada", LastName: "Lovelace", CompanyID: &companyID},
			wantErr: true,
		},
		{
			name:    "missing email",
			req:     RegisterUserRequest{Password: "longenough", FirstName: "Ada", LastName: "Lovelace", CompanyID: &companyID},
			wantErr: true,
		},
		{
			name:    "email without at sign",
			req:     RegisterUserRequest{Email: "not-an-email", Password: "longenough", FirstName: "Ada", LastName: "Lovelace", CompanyID: &companyID},
			wantErr: true,
		},
		{
			name:    "missing name",
			req:     RegisterUserRequest{Email: "founder@acme.io", Password: "longenough", FirstName: "  ", LastName: "Lovelace", CompanyID: &companyID},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := validateNewUser(tt.req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.Email == "" || user.FirstName == "" {
				t.Errorf("user not populated: %+v", user)
			}
		})
	}
}

func TestValidateNewUserNormalizesEmail(t *testing.T) {
	req := RegisterUserRequest{Email: "  Founder@Acme.IO ", Password: "longenough", FirstName: "Ada", LastName: "Lovelace", IsAdmin: true}
	user, err := validateNewUser(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "founder@acme.io" {
		t.Errorf("Email = %q, want %q", user.Email, "founder@acme.io")
	}
}
