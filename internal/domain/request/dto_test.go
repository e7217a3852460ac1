package request

import (
	"testing"

	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/validator"
)

func strptr(s string) *string { return &s }
func intptr(i int64) *int64   { return &i }

func TestCreateRequestValidate_TimeOff(t *testing.T) {
	req := CreateRequest{
		Type:      string(TypeTimeOff),
		StartDate: strptr("2025-03-10"),
		EndDate:   strptr("2025-03-12"),
		Remarks:   strptr("family trip"),
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid time_off request rejected: %v", err)
	}

	missing := CreateRequest{Type: string(TypeTimeOff)}
	err := missing.Validate()
	if err == nil {
		t.Fatal("time_off without dates and remarks must fail validation")
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	fields := errs.ToMap()
	for _, f := range []string{"start_date", "end_date", "remarks"} {
		if _, present := fields[f]; !present {
			t.Errorf("expected validation error for %s", f)
		}
	}
}

func TestCreateRequestValidate_MissShift(t *testing.T) {
	req := CreateRequest{
		Type:       string(TypeMissShift),
		ScheduleID: intptr(12),
		Remarks:    strptr("sick"),
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid miss_shift request rejected: %v", err)
	}

	noRemarks := CreateRequest{Type: string(TypeMissShift), ScheduleID: intptr(12)}
	if noRemarks.Validate() == nil {
		t.Error("miss_shift without remarks must fail validation")
	}
}

func TestCreateRequestValidate_ShiftSwap(t *testing.T) {
	req := CreateRequest{
		Type:               string(TypeShiftSwap),
		ScheduleID:         intptr(12),
		RequestedShiftID:   intptr(30),
		SwapWithEmployeeID: intptr(4),
		Remarks:            strptr("doctor appointment"),
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid shift_swap request rejected: %v", err)
	}

	noPartner := CreateRequest{
		Type:             string(TypeShiftSwap),
		ScheduleID:       intptr(12),
		RequestedShiftID: intptr(30),
		Remarks:          strptr("doctor appointment"),
	}
	if noPartner.Validate() == nil {
		t.Error("shift_swap without swap_with_employee_id must fail validation")
	}

	noTarget := CreateRequest{
		Type:               string(TypeShiftSwap),
		ScheduleID:         intptr(12),
		SwapWithEmployeeID: intptr(4),
		Remarks:            strptr("doctor appointment"),
	}
	if noTarget.Validate() == nil {
		t.Error("shift_swap without requested_shift_id must fail validation")
	}
}

func TestCreateRequestValidate_UnknownType(t *testing.T) {
	req := CreateRequest{Type: "vacation"}
	if req.Validate() == nil {
		t.Error("unknown request_type must fail validation")
	}

	// fill_open_shift and admin_offer_shift are created through their own
	// endpoints, never through the generic submission.
	fill := CreateRequest{Type: string(TypeFillOpenShift), ScheduleID: intptr(3)}
	if fill.Validate() == nil {
		t.Error("fill_open_shift must not be accepted on the generic endpoint")
	}
}
