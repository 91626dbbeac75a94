package controller

import "github.com/labstack/echo/v4"

type DiagnosisController interface {
	Animals(c echo.Context) error
	Diagnose(c echo.Context) error
}
