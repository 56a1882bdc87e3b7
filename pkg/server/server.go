package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/swg-tools/sginfo/pkg/sysinfo"
	"github.com/swg-tools/sginfo/pkg/sysinfo/cpe"
	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
	"github.com/swg-tools/sginfo/pkg/version"
)

type parseContents struct {
	Content string `json:"content,omitempty"`
}

type parseResult struct {
	Report        *types.Report `json:"report,omitempty"`
	CPE           string        `json:"cpe,omitempty"`
	ParseError    string        `json:"parse_error,omitempty"`
	ParsedAt      *time.Time    `json:"parsed_at,omitempty"`
	ParsedVersion string        `json:"parsed_version,omitempty"`
}

func Parse() echo.HandlerFunc {
	return func(c echo.Context) error {
		s := new(parseContents)
		if err := c.Bind(s); err != nil {
			return c.JSON(http.StatusBadRequest, "bad request")
		}

		var res parseResult

		r, err := sysinfo.Parse(s.Content)
		if err != nil {
			res.ParseError = err.Error()
			if errors.Is(err, sysinfo.ErrNoData) {
				return c.JSON(http.StatusBadRequest, res)
			}
			return c.JSON(http.StatusInternalServerError, res)
		}
		res.Report = r
		if name, err := cpe.FromReport(r); err == nil {
			res.CPE = name
		}

		t := time.Now()
		res.ParsedAt = &t
		res.ParsedVersion = version.Version
		return c.JSON(http.StatusOK, res)
	}
}

func Health() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": version.Version})
	}
}
