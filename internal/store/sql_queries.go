package store

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	createClient = `INSERT INTO clients (user_id, name, org_number, email, phone, address, currency)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING client_id, user_id, name, org_number, email, phone, address, currency, archived, created_at, updated_at;`

	getClients = `SELECT client_id, user_id, name, org_number, email, phone, address, currency, archived, created_at, updated_at
    FROM clients
    WHERE user_id = $1 AND (archived = FALSE OR $2)
    ORDER BY name;`

	getClientByID = `SELECT client_id, user_id, name, org_number, email, phone, address, currency, archived, created_at, updated_at
    FROM clients
    WHERE user_id = $1 AND client_id = $2;`

	updateClient = `UPDATE clients
    SET name = $3, org_number = $4, email = $5, phone = $6, address = $7, currency = $8, updated_at = NOW()
    WHERE user_id = $1 AND client_id = $2
    RETURNING client_id, user_id, name, org_number, email, phone, address, currency, archived, created_at, updated_at;`

	archiveClient = `UPDATE clients
    SET archived = TRUE, updated_at = NOW()
    WHERE user_id = $1 AND client_id = $2;`

	createProject = `INSERT INTO projects (user_id, client_id, name, description, hourly_rate, budget_hours, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING project_id, user_id, client_id, name, description, hourly_rate, budget_hours, status, created_at, updated_at;`

	getProjects = `SELECT project_id, user_id, client_id, name, description, hourly_rate, budget_hours, status, created_at, updated_at
    FROM projects
    WHERE user_id = $1
    ORDER BY name;`

	getProjectByID = `SELECT project_id, user_id, client_id, name, description, hourly_rate, budget_hours, status, created_at, updated_at
    FROM projects
    WHERE user_id = $1 AND project_id = $2;`

	updateProject = `UPDATE projects
    SET name = $3, description = $4, hourly_rate = $5, budget_hours = $6, status = $7, updated_at = NOW()
    WHERE user_id = $1 AND project_id = $2
    RETURNING project_id, user_id, client_id, name, description, hourly_rate, budget_hours, status, created_at, updated_at;`

	createTimeEntry = `INSERT INTO time_entries (user_id, project_id, entry_date, hours, note, billable)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING entry_id, user_id, project_id, entry_date, hours, note, billable, invoice_id, created_at;`

	deleteTimeEntry = `DELETE FROM time_entries
    WHERE user_id = $1 AND entry_id = $2 AND invoice_id IS NULL;`

	getTimeSummary = `SELECT
        COALESCE(SUM(hours), 0),
        COALESCE(SUM(hours) FILTER (WHERE billable), 0),
        COALESCE(SUM(hours) FILTER (WHERE invoice_id IS NOT NULL), 0)
    FROM time_entries
    WHERE user_id = $1 AND project_id = $2;`

	createInvoice = `INSERT INTO invoices (user_id, client_id, number, status, currency, issue_date, due_date, vat_rate, subtotal, vat_amount, total, exchange_rate, base_total)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    RETURNING invoice_id, created_at, updated_at;`

	createInvoiceItem = `INSERT INTO invoice_items (invoice_id, description, quantity, unit_price, amount)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING item_id;`

	getInvoiceByID = `SELECT invoice_id, user_id, client_id, number, status, currency, issue_date, due_date, vat_rate, subtotal, vat_amount, total, exchange_rate, base_total, created_at, updated_at
    FROM invoices
    WHERE user_id = $1 AND invoice_id = $2;`

	getInvoiceItems = `SELECT item_id, invoice_id, description, quantity, unit_price, amount
    FROM invoice_items
    WHERE invoice_id = $1
    ORDER BY item_id;`

	updateInvoiceStatus = `UPDATE invoices
    SET status = $3, updated_at = NOW()
    WHERE user_id = $1 AND invoice_id = $2
    RETURNING invoice_id, user_id, client_id, number, status, currency, issue_date, due_date, vat_rate, subtotal, vat_amount, total, exchange_rate, base_total, created_at, updated_at;`

	markOverdueInvoices = `UPDATE invoices
    SET status = 'overdue', updated_at = NOW()
    WHERE status = 'sent' AND due_date < $1;`

	createSalaryPayment = `INSERT INTO salary_payments (user_id, period, gross_amount, tax_amount, net_amount, due_date)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING payment_id, user_id, period, gross_amount, tax_amount, net_amount, due_date, paid, paid_at, created_at;`

	getSalaryPayments = `SELECT payment_id, user_id, period, gross_amount, tax_amount, net_amount, due_date, paid, paid_at, created_at
    FROM salary_payments
    WHERE user_id = $1
    ORDER BY period DESC;`

	markSalaryPaid = `UPDATE salary_payments
    SET paid = TRUE, paid_at = $3
    WHERE user_id = $1 AND payment_id = $2
    RETURNING payment_id, user_id, period, gross_amount, tax_amount, net_amount, due_date, paid, paid_at, created_at;`

	createCVProfile = `INSERT INTO cv_profiles (user_id, title, personal_info, summary, experience, skills)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING profile_id, created_at, updated_at;`

	getCVProfiles = `SELECT profile_id, user_id, title, personal_info, summary, experience, skills, created_at, updated_at
    FROM cv_profiles
    WHERE user_id = $1
    ORDER BY title;`

	getCVProfileByID = `SELECT profile_id, user_id, title, personal_info, summary, experience, skills, created_at, updated_at
    FROM cv_profiles
    WHERE user_id = $1 AND profile_id = $2;`

	updateCVProfile = `UPDATE cv_profiles
    SET title = $3, personal_info = $4, summary = $5, experience = $6, skills = $7, updated_at = NOW()
    WHERE user_id = $1 AND profile_id = $2
    RETURNING profile_id, created_at, updated_at;`

	deleteCVProfile = `DELETE FROM cv_profiles
    WHERE user_id = $1 AND profile_id = $2;`

	createDocument = `INSERT INTO documents (user_id, client_id, title, content, sensitive)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING document_id, user_id, client_id, title, content, sensitive, created_at, updated_at;`

	getDocuments = `SELECT document_id, user_id, client_id, title, content, sensitive, created_at, updated_at
    FROM documents
    WHERE user_id = $1 AND ($2::BIGINT IS NULL OR client_id = $2)
    ORDER BY updated_at DESC;`

	getDocumentByID = `SELECT document_id, user_id, client_id, title, content, sensitive, created_at, updated_at
    FROM documents
    WHERE user_id = $1 AND document_id = $2;`

	updateDocument = `UPDATE documents
    SET title = $3, content = $4, updated_at = NOW()
    WHERE user_id = $1 AND document_id = $2
    RETURNING document_id, user_id, client_id, title, content, sensitive, created_at, updated_at;`

	deleteDocument = `DELETE FROM documents
    WHERE user_id = $1 AND document_id = $2;`
)
