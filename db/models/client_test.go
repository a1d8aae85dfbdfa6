package models

import "testing"

func TestClientHasDeliverableEmail(t *testing.T) {
	tests := []struct {
		name   string
		mailID string
		want   bool
	}{
		{"real address", "acme@example.com", true},
		{"blank", "", false},
		{"import placeholder", UnassignedSentinel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := Client{Name: "Acme Traders", MailID: tt.mailID}
			if got := client.HasDeliverableEmail(); got != tt.want {
				t.Errorf("HasDeliverableEmail() with MailID %q = %v, want %v", tt.mailID, got, tt.want)
			}
		})
	}
}
