package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	expenseRepo "agrisync/pkg/expense/repository"
	"agrisync/pkg/httperr"
	incomeRepo "agrisync/pkg/income/repository"
)

// ExportCtrl streams the finance book as an xlsx workbook, one sheet per
// record type.
type ExportCtrl struct {
	incomes  incomeRepo.IncomeRepository
	expenses expenseRepo.ExpenseRepository
}

func New(incomes incomeRepo.IncomeRepository, expenses expenseRepo.ExpenseRepository) *ExportCtrl {
	return &ExportCtrl{incomes: incomes, expenses: expenses}
}

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *ExportCtrl) Export(c echo.Context) error {
	incomes, err := h.incomes.List()
	if err != nil {
		return httperr.Internal(c, err)
	}
	expenses, err := h.expenses.List()
	if err != nil {
		return httperr.Internal(c, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Incomes"); err != nil {
		return httperr.Internal(c, err)
	}
	setRow := func(sheet string, row int, cells []any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, cell, &cells)
	}

	if err := setRow("Incomes", 1, []any{"ID", "Source", "Amount", "Date received"}); err != nil {
		return httperr.Internal(c, err)
	}
	for i, in := range incomes {
		cells := []any{in.ID, in.Source, in.Amount.StringFixed(2), in.DateReceived.String()}
		if err := setRow("Incomes", i+2, cells); err != nil {
			return httperr.Internal(c, err)
		}
	}

	if _, err := f.NewSheet("Expenses"); err != nil {
		return httperr.Internal(c, err)
	}
	if err := setRow("Expenses", 1, []any{"ID", "Category", "Amount", "Date spent", "Notes"}); err != nil {
		return httperr.Internal(c, err)
	}
	for i, ex := range expenses {
		cells := []any{ex.ID, ex.Category, ex.Amount.StringFixed(2), ex.DateSpent.String(), ex.Notes}
		if err := setRow("Expenses", i+2, cells); err != nil {
			return httperr.Internal(c, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return httperr.Internal(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "finance.xlsx"))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
