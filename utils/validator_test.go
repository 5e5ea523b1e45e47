package utils

import "testing"

func TestValidateStructRequired(t *testing.T) {
	type form struct {
		Name string `validate:"required"`
	}
	if err := ValidateStruct(&form{}); err == nil {
		t.Fatal("empty required field should fail")
	}
	if err := ValidateStruct(&form{Name: "Budi"}); err != nil {
		t.Fatalf("filled required field should pass: %v", err)
	}
}

func TestValidateStructPhone8(t *testing.T) {
	type form struct {
		Number string `validate:"required,phone8"`
	}
	valid := []string{"81234567", "8123456789012", "85712345678"}
	for _, n := range valid {
		if err := ValidateStruct(&form{Number: n}); err != nil {
			t.Errorf("%q should be valid: %v", n, err)
		}
	}
	invalid := []string{"0812345678", "71234567", "8123", "8123456789012345", "81234abc"}
	for _, n := range invalid {
		if err := ValidateStruct(&form{Number: n}); err == nil {
			t.Errorf("%q should be invalid", n)
		}
	}
}

func TestValidateStructPwdMin(t *testing.T) {
	type form struct {
		Password string `validate:"pwdmin"`
	}
	if err := ValidateStruct(&form{Password: "12345"}); err == nil {
		t.Fatal("5-char password should fail")
	}
	if err := ValidateStruct(&form{Password: "123456"}); err != nil {
		t.Fatalf("6-char password should pass: %v", err)
	}
}

func TestValidateStructHour24(t *testing.T) {
	type form struct {
		Hour int `validate:"hour24"`
	}
	for _, h := range []int{-1, 0, 12, 23} {
		if err := ValidateStruct(&form{Hour: h}); err != nil {
			t.Errorf("hour %d should be valid: %v", h, err)
		}
	}
	for _, h := range []int{-2, 24, 100} {
		if err := ValidateStruct(&form{Hour: h}); err == nil {
			t.Errorf("hour %d should be invalid", h)
		}
	}
}

func TestValidateStructEqField(t *testing.T) {
	type form struct {
		Password string `validate:"pwdmin"`
		Confirm  string `validate:"eqfield=Password"`
	}
	if err := ValidateStruct(&form{Password: "rahasia1", Confirm: "rahasia2"}); err == nil {
		t.Fatal("mismatched confirmation should fail")
	}
	if err := ValidateStruct(&form{Password: "rahasia1", Confirm: "rahasia1"}); err != nil {
		t.Fatalf("matching confirmation should pass: %v", err)
	}
}
