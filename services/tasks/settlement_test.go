package tasks

import (
	"encoding/json"
	"testing"

	"doctorsportal/models"
)

func TestNewSettlementTask(t *testing.T) {
	task, opts, err := NewSettlementTask(models.SettlementPayload{PaymentID: "abc"})
	if err != nil {
		t.Fatalf("NewSettlementTask: %v", err)
	}
	if task.Type() != TypeSettlePayment {
		t.Errorf("expected type %s, got %s", TypeSettlePayment, task.Type())
	}
	var p models.SettlementPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil || p.PaymentID != "abc" {
		t.Errorf("unexpected payload %s: %v", task.Payload(), err)
	}
	if len(opts) == 0 {
		t.Error("expected task options")
	}
}
