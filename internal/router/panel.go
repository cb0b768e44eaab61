package router

import (
	"fmt"

	"CampusHub/internal/model"
)

// OpenPanel opens the notification panel and marks every notification read.
func OpenPanel(s model.State) model.State {
	s.Nav.PanelOpen = true
	if s.Unread() == 0 {
		return s
	}
	list := make([]model.AppNotification, len(s.Notifications))
	copy(list, s.Notifications)
	for i := range list {
		list[i].IsRead = true
	}
	s.Notifications = list
	return s
}

// ClosePanel closes the panel without navigating.
func ClosePanel(s model.State) model.State {
	s.Nav.PanelOpen = false
	return s
}

func indexOf(s model.State, id string) int {
	for i, n := range s.Notifications {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Tap navigates to the notification's destination, if any, and closes the panel.
// The returned bool reports whether the active destination changed.
func Tap(s model.State, id string) (model.State, bool, error) {
	i := indexOf(s, id)
	if i < 0 {
		return s, false, fmt.Errorf("%w: notification %q", model.ErrNotFound, id)
	}
	s.Nav.PanelOpen = false
	d, ok := Route(s.Notifications[i])
	if !ok {
		return s, false, nil
	}
	s.Nav.Active = d
	return s, true, nil
}

// Dismiss deletes one notification. It never navigates and leaves the panel as it was.
func Dismiss(s model.State, id string) (model.State, error) {
	i := indexOf(s, id)
	if i < 0 {
		return s, fmt.Errorf("%w: notification %q", model.ErrNotFound, id)
	}
	list := make([]model.AppNotification, 0, len(s.Notifications)-1)
	list = append(list, s.Notifications[:i]...)
	s.Notifications = append(list, s.Notifications[i+1:]...)
	return s, nil
}
