package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/javiator/tenant-management-applications/internal/service"
)

func paramID(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, service.Validationf("invalid id %q", raw)
	}
	return uint(id), nil
}

// Properties

func (a *api) listProperties(c *fiber.Ctx) error {
	properties, err := a.svc.Properties.List()
	if err != nil {
		return err
	}
	return c.JSON(properties)
}

func (a *api) getProperty(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	property, err := a.svc.Properties.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(property)
}

func (a *api) createProperty(c *fiber.Ctx) error {
	var in service.PropertyInput
	if err := c.BodyParser(&in); err != nil {
		return service.Validationf("invalid request body: %v", err)
	}
	property, err := a.svc.Properties.Create(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

func (a *api) updateProperty(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in service.PropertyUpdate
	if err := c.BodyParser(&in); err != nil {
		return service.Validationf("invalid request body: %v", err)
	}
	property, err := a.svc.Properties.Update(id, in)
	if err != nil {
		return err
	}
	return c.JSON(property)
}

func (a *api) deleteProperty(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := a.svc.Properties.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (a *api) propertyLedger(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	led, err := a.svc.Transactions.PropertyLedger(id)
	if err != nil {
		return err
	}
	return c.JSON(led)
}

// Tenants

func (a *api) listTenants(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 10)
	tenants, err := a.svc.Tenants.List(page, perPage)
	if err != nil {
		return err
	}
	return c.JSON(tenants)
}

func (a *api) getTenant(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	tenant, err := a.svc.Tenants.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(tenant)
}

func (a *api) createTenant(c *fiber.Ctx) error {
	var in service.TenantInput
	if err := c.BodyParser(&in); err != nil {
		return service.Validationf("invalid request body: %v", err)
	}
	tenant, err := a.svc.Tenants.Create(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(tenant)
}

func (a *api) updateTenant(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in service.TenantUpdate
	if err := c.BodyParser(&in); err != nil {
		return service.Validationf("invalid request body: %v", err)
	}
	tenant, err := a.svc.Tenants.Update(id, in)
	if err != nil {
		return err
	}
	return c.JSON(tenant)
}

func (a *api) deleteTenant(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := a.svc.Tenants.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (a *api) tenantLedger(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	led, err := a.svc.Transactions.TenantLedger(id)
	if err != nil {
		return err
	}
	return c.JSON(led)
}

// Transactions

func (a *api) listTransactions(c *fiber.Ctx) error {
	in := service.TransactionListInput{
		Type:          c.Query("type"),
		PropertyID:    c.Query("property_id"),
		SortBy:        c.Query("sort_by"),
		SortDirection: c.Query("sort_direction"),
		Page:          c.QueryInt("page", 1),
		PerPage:       c.QueryInt("per_page", 0),
	}
	page, err := a.svc.Transactions.List(in)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (a *api) getTransaction(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	tx, err := a.svc.Transactions.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(tx)
}

func (a *api) createTransaction(c *fiber.Ctx) error {
	var in service.TransactionInput
	if err := c.BodyParser(&in); err != nil {
		return service.Validationf("invalid request body: %v", err)
	}
	tx, err := a.svc.Transactions.Create(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

func (a *api) updateTransaction(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in service.TransactionUpdate
	if err := c.BodyParser(&in); err != nil {
		return service.Validationf("invalid request body: %v", err)
	}
	tx, err := a.svc.Transactions.Update(id, in)
	if err != nil {
		return err
	}
	return c.JSON(tx)
}

func (a *api) deleteTransaction(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := a.svc.Transactions.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reports and backup

func (a *api) sendReport(c *fiber.Ctx, rep *service.Report, err error) error {
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, rep.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rep.Filename+`"`)
	return c.Send(rep.Data)
}

func (a *api) tenantsCSV(c *fiber.Ctx) error {
	rep, err := a.svc.Reports.TenantsCSV()
	return a.sendReport(c, rep, err)
}

func (a *api) propertiesCSV(c *fiber.Ctx) error {
	rep, err := a.svc.Reports.PropertiesCSV()
	return a.sendReport(c, rep, err)
}

func (a *api) transactionsCSV(c *fiber.Ctx) error {
	rep, err := a.svc.Reports.TransactionsCSV()
	return a.sendReport(c, rep, err)
}

func (a *api) tenantsSpreadsheet(c *fiber.Ctx) error {
	rep, err := a.svc.Reports.TenantsSpreadsheet()
	return a.sendReport(c, rep, err)
}

func (a *api) transactionsSpreadsheet(c *fiber.Ctx) error {
	rep, err := a.svc.Reports.TransactionsSpreadsheet()
	return a.sendReport(c, rep, err)
}

func (a *api) backup(c *fiber.Ctx) error {
	path, filename, err := a.svc.Backups.Run()
	if err != nil {
		return err
	}
	return c.Download(path, filename)
}
