package types

// Conversation summarizes every message exchanged with one partner.
// It is derived on demand and never stored.
type Conversation struct {
	PartnerID    string   `json:"partnerID"`
	PartnerName  string   `json:"partnerName"`
	PartnerEmail string   `json:"partnerEmail"`
	PartnerRole  Role     `json:"partnerRole"`
	LastMessage  *Message `json:"lastMessage"`
	UnreadCount  int      `json:"unreadCount"`
}
