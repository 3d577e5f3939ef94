package handler

import (
	"teodity/internal/domain/service"
	"teodity/internal/usecase"
)

var (
	authHandler       *AuthHandler
	userHandler       *UserHandler
	categoryHandler   *CategoryHandler
	productHandler    *ProductHandler
	reviewHandler     *ReviewHandler
	reportHandler     *ReportHandler
	suspiciousHandler *SuspiciousHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	categoryUseCase *usecase.CategoryUseCase,
	productUseCase *usecase.ProductUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	reportUseCase *usecase.ReportUseCase,
	suspiciousUseCase *usecase.SuspiciousUseCase,
	fileStore service.FileStore,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase, fileStore)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	productHandler = NewProductHandler(productUseCase, fileStore)
	reviewHandler = NewReviewHandler(reviewUseCase)
	reportHandler = NewReportHandler(reportUseCase)
	suspiciousHandler = NewSuspiciousHandler(suspiciousUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

func GetSuspiciousHandler() *SuspiciousHandler {
	return suspiciousHandler
}
