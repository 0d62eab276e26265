package errors

import "testing"

func TestParseIntList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "simple list", input: "2,3,4", want: []int{2, 3, 4}},
		{name: "whitespace", input: " 2, 3 ,4 ", want: []int{2, 3, 4}},
		{name: "empty tokens skipped", input: "2,,3,", want: []int{2, 3}},
		{name: "negative values", input: "-1,0,5", want: []int{-1, 0, 5}},
		{name: "empty string", input: "", want: nil},
		{name: "whitespace only", input: "  ", want: nil},
		{name: "non-integer token", input: "2,abc,4", wantErr: true},
		{name: "float token", input: "2.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntList(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseIntList() error = nil, want error")
				}
				if !Is(err, ErrCodeInvalidInput) {
					t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIntList() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseIntList() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseIntList()[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt(" 42 ")
	if err != nil {
		t.Fatalf("ParseInt() error = %v", err)
	}
	if n != 42 {
		t.Errorf("ParseInt() = %d, want 42", n)
	}

	if _, err := ParseInt("forty-two"); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
	}
}

func TestValidateSameLength(t *testing.T) {
	if err := ValidateSameLength([]int{1, 2}, []int{3, 4}); err != nil {
		t.Errorf("ValidateSameLength() error = %v, want nil", err)
	}

	if err := ValidateSameLength(nil, nil); err != nil {
		t.Errorf("ValidateSameLength(nil, nil) error = %v, want nil", err)
	}

	err := ValidateSameLength([]int{1, 2, 3}, []int{4})
	if err == nil {
		t.Fatal("ValidateSameLength() error = nil, want error")
	}
	if !Is(err, ErrCodeValidation) {
		t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeValidation)
	}
}
