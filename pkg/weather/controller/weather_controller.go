package controller

import "github.com/labstack/echo/v4"

type WeatherController interface {
	Risk(c echo.Context) error
}
