// Package schema holds the table definitions applied on a fresh database.
// Changes to existing databases go through internal/migrations.
package schema

// TableDefinitions contains all the SQL statements to create the database tables
// Don't put REFERENCES and don't put CHECK constraints in the CREATE TABLE statements
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255),
		phone VARCHAR(20),
		carrier VARCHAR(20),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL,
		magic_code VARCHAR(255),
		magic_code_expires_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS organizations (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(50) UNIQUE NOT NULL,
		sport VARCHAR(30),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS organization_members (
		organization_id UUID NOT NULL,
		user_id UUID NOT NULL,
		role VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (organization_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS athlete_profiles (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		user_id UUID,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(255),
		sport VARCHAR(30) NOT NULL,
		position VARCHAR(50),
		graduation_year INTEGER,
		school VARCHAR(255),
		city VARCHAR(100),
		state VARCHAR(50),
		height_inches INTEGER,
		weight_lbs INTEGER,
		gpa NUMERIC(3,2),
		bio TEXT,
		gar_score INTEGER,
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS video_analyses (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		athlete_id UUID NOT NULL,
		video_url TEXT NOT NULL,
		sport VARCHAR(30) NOT NULL,
		duration_seconds DOUBLE PRECISION NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL,
		speed DOUBLE PRECISION NOT NULL DEFAULT 0,
		agility DOUBLE PRECISION NOT NULL DEFAULT 0,
		technique DOUBLE PRECISION NOT NULL DEFAULT 0,
		endurance DOUBLE PRECISION NOT NULL DEFAULT 0,
		decision DOUBLE PRECISION NOT NULL DEFAULT 0,
		gar_score INTEGER NOT NULL DEFAULT 0,
		tier VARCHAR(20),
		strengths TEXT[] NOT NULL DEFAULT '{}',
		improvements TEXT[] NOT NULL DEFAULT '{}',
		error_message TEXT,
		created_at TIMESTAMP NOT NULL,
		completed_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS starpath_progress (
		athlete_id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		total_xp INTEGER NOT NULL DEFAULT 0,
		level INTEGER NOT NULL DEFAULT 1,
		current_streak INTEGER NOT NULL DEFAULT 0,
		longest_streak INTEGER NOT NULL DEFAULT 0,
		last_activity_date TIMESTAMP,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS xp_transactions (
		id UUID PRIMARY KEY,
		athlete_id UUID NOT NULL,
		amount INTEGER NOT NULL,
		source VARCHAR(30) NOT NULL,
		reference_id VARCHAR(64),
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS achievements (
		id UUID PRIMARY KEY,
		athlete_id UUID NOT NULL,
		code VARCHAR(30) NOT NULL,
		title VARCHAR(100) NOT NULL,
		unlocked_at TIMESTAMP NOT NULL,
		UNIQUE (athlete_id, code)
	)`,
	`CREATE TABLE IF NOT EXISTS academy_courses (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		sport VARCHAR(30),
		level VARCHAR(20) NOT NULL,
		instructor_id UUID,
		capacity INTEGER NOT NULL DEFAULT 0,
		price_cents BIGINT NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL,
		starts_at TIMESTAMP,
		ends_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS student_enrollments (
		id UUID PRIMARY KEY,
		course_id UUID NOT NULL,
		organization_id UUID NOT NULL,
		student_id UUID NOT NULL,
		status VARCHAR(20) NOT NULL,
		progress INTEGER NOT NULL DEFAULT 0,
		enrolled_at TIMESTAMP NOT NULL,
		completed_at TIMESTAMP,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		sport VARCHAR(30) NOT NULL,
		age_group VARCHAR(20),
		season VARCHAR(30),
		coach_id UUID,
		max_roster_size INTEGER NOT NULL DEFAULT 25,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS team_rosters (
		id UUID PRIMARY KEY,
		team_id UUID NOT NULL,
		athlete_id UUID NOT NULL,
		jersey_number INTEGER,
		position VARCHAR(50),
		status VARCHAR(20) NOT NULL,
		joined_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (team_id, athlete_id)
	)`,
	`CREATE TABLE IF NOT EXISTS coupons (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		code VARCHAR(32) NOT NULL,
		description TEXT,
		discount_type VARCHAR(10) NOT NULL,
		discount_value BIGINT NOT NULL,
		min_purchase_cents BIGINT NOT NULL DEFAULT 0,
		max_uses INTEGER NOT NULL DEFAULT 0,
		max_uses_per_user INTEGER NOT NULL DEFAULT 0,
		used_count INTEGER NOT NULL DEFAULT 0,
		applies_to VARCHAR(20) NOT NULL,
		valid_from TIMESTAMP,
		valid_until TIMESTAMP,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (organization_id, code)
	)`,
	`CREATE TABLE IF NOT EXISTS coupon_usage (
		id UUID PRIMARY KEY,
		coupon_id UUID NOT NULL,
		user_email VARCHAR(255) NOT NULL,
		reference_type VARCHAR(20) NOT NULL,
		reference_id VARCHAR(64) NOT NULL,
		discount_cents BIGINT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS camps (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		sport VARCHAR(30) NOT NULL,
		location VARCHAR(255) NOT NULL,
		start_date TIMESTAMP NOT NULL,
		end_date TIMESTAMP NOT NULL,
		price_cents BIGINT NOT NULL DEFAULT 0,
		capacity INTEGER NOT NULL,
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS camp_registrations (
		id UUID PRIMARY KEY,
		camp_id UUID NOT NULL,
		organization_id UUID NOT NULL,
		athlete_id UUID,
		participant_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(20),
		amount_cents BIGINT NOT NULL,
		discount_cents BIGINT NOT NULL DEFAULT 0,
		total_cents BIGINT NOT NULL,
		coupon_code VARCHAR(32),
		status VARCHAR(20) NOT NULL,
		checkout_session_id VARCHAR(255),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		purpose VARCHAR(20) NOT NULL,
		reference_id VARCHAR(64) NOT NULL,
		email VARCHAR(255),
		amount_cents BIGINT NOT NULL,
		currency VARCHAR(3) NOT NULL,
		status VARCHAR(20) NOT NULL,
		provider_session_id VARCHAR(255) UNIQUE,
		created_at TIMESTAMP NOT NULL,
		paid_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS prospects (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		phone VARCHAR(20),
		carrier VARCHAR(20),
		sport VARCHAR(30),
		position VARCHAR(50),
		graduation_year INTEGER,
		school VARCHAR(255),
		state VARCHAR(50),
		status VARCHAR(20) NOT NULL,
		score INTEGER,
		source VARCHAR(20) NOT NULL,
		source_url TEXT,
		notes TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		channel VARCHAR(10) NOT NULL,
		subject VARCHAR(255),
		body TEXT NOT NULL,
		status VARCHAR(20) NOT NULL,
		filter JSONB NOT NULL DEFAULT '{}'::jsonb,
		sent_count INTEGER NOT NULL DEFAULT 0,
		failed_count INTEGER NOT NULL DEFAULT 0,
		launched_at TIMESTAMP,
		completed_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(20),
		source VARCHAR(50),
		status VARCHAR(20) NOT NULL,
		notes TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (organization_id, email)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		title VARCHAR(255) NOT NULL,
		type VARCHAR(20) NOT NULL,
		location VARCHAR(255),
		starts_at TIMESTAMP NOT NULL,
		ends_at TIMESTAMP NOT NULL,
		capacity INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rsvps (
		id UUID PRIMARY KEY,
		event_id UUID NOT NULL,
		organization_id UUID NOT NULL,
		lead_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		guests INTEGER NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS combine_tour_events (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		city VARCHAR(100) NOT NULL,
		state VARCHAR(50) NOT NULL,
		venue VARCHAR(255),
		event_date TIMESTAMP NOT NULL,
		registration_deadline TIMESTAMP NOT NULL,
		capacity INTEGER NOT NULL,
		price_cents BIGINT NOT NULL DEFAULT 0,
		sports TEXT[] NOT NULL DEFAULT '{}',
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS combine_registrations (
		id UUID PRIMARY KEY,
		combine_event_id UUID NOT NULL,
		organization_id UUID NOT NULL,
		athlete_id UUID NOT NULL,
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (combine_event_id, athlete_id)
	)`,
	`CREATE TABLE IF NOT EXISTS combine_results (
		id UUID PRIMARY KEY,
		combine_event_id UUID NOT NULL,
		organization_id UUID NOT NULL,
		athlete_id UUID NOT NULL,
		forty_yard_dash DOUBLE PRECISION,
		vertical_inches DOUBLE PRECISION,
		broad_jump_inches DOUBLE PRECISION,
		shuttle_seconds DOUBLE PRECISION,
		bench_reps INTEGER,
		recorded_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS project_tasks (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		title VARCHAR(200) NOT NULL,
		description TEXT,
		status VARCHAR(20) NOT NULL,
		priority VARCHAR(10) NOT NULL,
		assignee_id UUID,
		due_date TIMESTAMP,
		depends_on TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		user_id UUID NOT NULL,
		type VARCHAR(30) NOT NULL,
		title VARCHAR(255) NOT NULL,
		message TEXT,
		link TEXT,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS social_accounts (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		platform VARCHAR(20) NOT NULL,
		handle VARCHAR(100) NOT NULL,
		encrypted_access_token TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (organization_id, platform)
	)`,
	`CREATE TABLE IF NOT EXISTS social_posts (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL,
		content TEXT NOT NULL,
		media_urls TEXT[] NOT NULL DEFAULT '{}',
		platforms TEXT[] NOT NULL,
		status VARCHAR(30) NOT NULL,
		scheduled_at TIMESTAMP,
		published_at TIMESTAMP,
		results JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_by UUID,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key VARCHAR(255) PRIMARY KEY,
		value TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// TableNames returns a list of all table names in creation order
var TableNames = []string{
	"users",
	"user_sessions",
	"organizations",
	"organization_members",
	"athlete_profiles",
	"video_analyses",
	"starpath_progress",
	"xp_transactions",
	"achievements",
	"academy_courses",
	"student_enrollments",
	"teams",
	"team_rosters",
	"coupons",
	"coupon_usage",
	"camps",
	"camp_registrations",
	"payments",
	"prospects",
	"campaigns",
	"leads",
	"events",
	"rsvps",
	"combine_tour_events",
	"combine_registrations",
	"combine_results",
	"project_tasks",
	"notifications",
	"social_accounts",
	"social_posts",
	"settings",
}

// IndexDefinitions are created after the tables
var IndexDefinitions = []string{
	`CREATE INDEX IF NOT EXISTS idx_athlete_profiles_org ON athlete_profiles (organization_id, last_name, first_name)`,
	`CREATE INDEX IF NOT EXISTS idx_video_analyses_athlete ON video_analyses (athlete_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_student_enrollments_course ON student_enrollments (course_id, status, enrolled_at)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_student_enrollments_open ON student_enrollments (course_id, student_id) WHERE status <> 'dropped'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_rsvps_active ON rsvps (event_id, email) WHERE status <> 'cancelled'`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (organization_id, user_id, read, created_at DESC)`,
}

// V2Indexes were introduced with schema version 2. Fresh databases get them
// from IndexDefinitions, existing ones from the v2 migration.
var V2Indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_starpath_leaderboard ON starpath_progress (organization_id, total_xp DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_social_posts_due ON social_posts (scheduled_at) WHERE status = 'scheduled'`,
	`CREATE INDEX IF NOT EXISTS idx_prospects_pipeline ON prospects (organization_id, status, score DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads (organization_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_org_status ON payments (organization_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_combine_results_event ON combine_results (combine_event_id, recorded_at)`,
	`CREATE INDEX IF NOT EXISTS idx_coupon_usage_email ON coupon_usage (coupon_id, user_email)`,
	`CREATE INDEX IF NOT EXISTS idx_xp_transactions_athlete ON xp_transactions (athlete_id, created_at DESC)`,
}

func init() {
	IndexDefinitions = append(IndexDefinitions, V2Indexes...)
}
