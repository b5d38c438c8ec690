package sweetControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/sugarsphere/sweetshop-api/api"
	"github.com/sugarsphere/sweetshop-api/services"
)

// GET /api/sweets/export-excel (admin)
func ExportSweetsToExcel(svc *services.SweetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sweets, err := svc.List(c.Request.Context())
		if err != nil {
			api.FailErr(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Sweets")
		if err != nil {
			api.Fail(c, "Failed to create Excel sheet")
			return
		}

		headers := []string{"ID", "NumericID", "Name", "Category", "Description", "Price", "Quantity", "ImageURL"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, s := range sweets {
			row := sheet.AddRow()
			row.AddCell().SetValue(s.ID.Hex())
			row.AddCell().SetValue(s.NumericID)
			row.AddCell().SetValue(s.Name)
			row.AddCell().SetValue(s.Category)
			row.AddCell().SetValue(s.Description)
			row.AddCell().SetValue(s.Price)
			row.AddCell().SetValue(s.Quantity)
			row.AddCell().SetValue(s.ImageURL)
		}

		c.Header("Content-Disposition", "attachment; filename=sweets.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.Status(http.StatusInternalServerError)
		}
	}
}
