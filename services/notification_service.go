package services

import "github.com/sirupsen/logrus"

// NotificationService is the stock observer: it logs every status change.
type NotificationService struct {
	log *logrus.Logger
}

func NewNotificationService(log *logrus.Logger) *NotificationService {
	return &NotificationService{log: log}
}

func (ns *NotificationService) Update(orderID, status string) error {
	ns.log.Infof("Notification: Order %s status changed to %s", orderID, status)
	return nil
}
