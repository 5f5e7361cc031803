package redis

import "fmt"

const ns = "fashionistas:v1"

func KeyEventSummary(eventID int64) string {
	return fmt.Sprintf("%s:event:%d:summary", ns, eventID)
}

func KeyEventTickets(eventID int64) string {
	return fmt.Sprintf("%s:event:%d:tickets", ns, eventID)
}

func KeyEventsPage(limit, offset int) string {
	return fmt.Sprintf("%s:events:page:%d:%d", ns, limit, offset)
}

func KeyIdemPurchase(userID int64, idemKey string) string {
	return fmt.Sprintf("%s:idem:purchase:%d:%s", ns, userID, idemKey)
}

func KeyIdemRegistration(userID int64, idemKey string) string {
	return fmt.Sprintf("%s:idem:registration:%d:%s", ns, userID, idemKey)
}

func ChannelEventsChanged() string {
	return ns + ":events:changed"
}
