package services

// ServiceContainer holds instances of all the application services.
// It is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Stats       StatsSvc
	Credit      CreditSvcFacade
	WorkShift   WorkShiftSvcFacade
	User        UserSvcFacade
	Auth        AuthSvc
}
