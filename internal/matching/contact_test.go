package matching

import (
	"testing"

	"github.com/siddarthan007/laf/internal/model"
)

func TestContactResolver(t *testing.T) {
	office := model.Contact{
		Name:          "Campus Admin Office",
		Email:         "office@university.local",
		ContactNumber: "100",
	}
	resolver := NewContactResolver(office)

	admin := &model.User{Name: "Desk Admin", Email: "desk@university.local", ContactNumber: "200", Role: model.RoleAdmin}
	student := &model.User{Name: "Ana", Email: "ana@university.local", ContactNumber: "300", Role: model.RoleUser}

	// Office report by an admin discloses the office identity.
	got := resolver.Resolve(&model.Item{IsAdminReport: true}, admin)
	if got != office {
		t.Errorf("admin office report: expected office contact, got %+v", got)
	}

	// Admin report filed on behalf of a student discloses the student.
	got = resolver.Resolve(&model.Item{IsAdminReport: true}, student)
	if got.Email != student.Email {
		t.Errorf("on-behalf report: expected student contact, got %+v", got)
	}

	// Regular report by an admin user discloses the admin personally.
	got = resolver.Resolve(&model.Item{IsAdminReport: false}, admin)
	if got.Email != admin.Email {
		t.Errorf("personal admin report: expected admin's own contact, got %+v", got)
	}

	// Regular student report discloses the student.
	got = resolver.Resolve(&model.Item{IsAdminReport: false}, student)
	if got.Name != "Ana" || got.ContactNumber != "300" {
		t.Errorf("student report: expected student contact, got %+v", got)
	}
}
