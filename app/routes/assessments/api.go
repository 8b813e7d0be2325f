package assessments

import (
	"database/sql"
	"strconv"

	"venturepulse/app/database"
	"venturepulse/app/models"
	"venturepulse/app/routes/auth"
	"venturepulse/app/services"

	"github.com/gofiber/fiber/v2"
)

// DefaultScore is the slider baseline shown when no prior score exists.
const DefaultScore = 3

func parsePeriodQuery(c *fiber.Ctx) (int, int, error) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "year must be between 2000 and 2100")
	}
	quarter, err := strconv.Atoi(c.Query("quarter"))
	if err != nil || quarter < 1 || quarter > 4 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "quarter must be between 1 and 4")
	}
	return year, quarter, nil
}

// GetAssessmentFormAPI returns the company's question bank with each slider's
// starting value: the relevant prior score when one exists, the baseline
// otherwise. Editing an already-submitted quarter pre-fills from that quarter.
func GetAssessmentFormAPI(c *fiber.Ctx, db *sql.DB) error {
	year, quarter, err := parsePeriodQuery(c)
	if err != nil {
		return err
	}

	companyID, err := auth.CompanyScope(c, c.Query("company_id"))
	if err != nil {
		return err
	}

	questions, err := database.GetQuestionsForCompany(db, companyID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load questions"})
	}

	priorScores, err := services.GetPriorScores(db, companyID, year, quarter, true)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load prior scores"})
	}

	type formQuestion struct {
		*models.Question
		InitialScore int  `json:"initial_score"`
		HasPrior     bool `json:"has_prior"`
	}

	form := make([]formQuestion, 0, len(questions))
	for _, q := range questions {
		fq := formQuestion{Question: q, InitialScore: DefaultScore}
		if priorScores != nil {
			if score, ok := priorScores[q.ID]; ok {
				fq.InitialScore = score
				fq.HasPrior = true
			}
		}
		form = append(form, fq)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"year":      year,
		"quarter":   quarter,
		"questions": form,
	})
}

// SubmitAssessmentAPI stores a manually entered assessment. Unlike the import
// pipeline, every score must be in [1,5]; out-of-range input is rejected, not
// coerced. Resubmitting a quarter overwrites it.
func SubmitAssessmentAPI(c *fiber.Ctx, db *sql.DB) error {
	type submittedResponse struct {
		QuestionID string `json:"question_id"`
		Score      int    `json:"score"`
	}
	type SubmitRequest struct {
		CompanyID string              `json:"company_id"`
		Year      int                 `json:"year"`
		Quarter   int                 `json:"quarter"`
		Responses []submittedResponse `json:"responses"`
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Year < 2000 || req.Year > 2100 {
		return c.Status(400).JSON(fiber.Map{"error": "Year must be between 2000 and 2100"})
	}
	if req.Quarter < 1 || req.Quarter > 4 {
		return c.Status(400).JSON(fiber.Map{"error": "Quarter must be between 1 and 4"})
	}
	if len(req.Responses) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No responses submitted"})
	}

	companyID, err := auth.CompanyScope(c, req.CompanyID)
	if err != nil {
		return err
	}

	responses := make([]*models.AssessmentResponse, 0, len(req.Responses))
	for _, r := range req.Responses {
		if r.Score < 1 || r.Score > 5 {
			return c.Status(400).JSON(fiber.Map{"error": "Scores must be between 1 and 5"})
		}
		if r.QuestionID == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Every response needs a question id"})
		}
		responses = append(responses, &models.AssessmentResponse{
			QuestionID: r.QuestionID,
			Score:      r.Score,
		})
	}

	// Overwrite, never merge: resubmission replaces the whole quarter.
	if existing, err := database.GetPeriod(db, companyID, req.Year, req.Quarter); err == nil {
		if err := database.DeletePeriod(db, existing.ID); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to replace existing assessment"})
		}
	} else if err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	period := &models.AssessmentPeriod{CompanyID: companyID, Year: req.Year, Quarter: req.Quarter}
	if err := database.CreatePeriod(db, period); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create assessment period"})
	}
	if err := database.InsertResponses(db, period.ID, responses); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save responses"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":   true,
		"period_id": period.ID,
		"responses": len(responses),
	})
}

// GetRadarAPI returns the category axes for one quarter plus, when available,
// the prior quarter's axes and per-question score changes for delta rendering.
func GetRadarAPI(c *fiber.Ctx, db *sql.DB) error {
	year, quarter, err := parsePeriodQuery(c)
	if err != nil {
		return err
	}

	companyID, err := auth.CompanyScope(c, c.Query("company_id"))
	if err != nil {
		return err
	}

	period, err := database.GetPeriod(db, companyID, year, quarter)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "No assessment exists for that quarter"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	axes, err := services.PeriodAxes(db, companyID, period.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to aggregate scores"})
	}

	responses, err := database.GetResponsesByPeriod(db, period.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load responses"})
	}
	currentScores := make(map[string]int, len(responses))
	for _, r := range responses {
		currentScores[r.QuestionID] = r.Score
	}

	var previousAxes []services.CategoryAxis
	periods, err := database.GetPeriodsByCompany(db, companyID)
	if err == nil {
		if previous := services.SelectPriorPeriod(periods, year, quarter, false); previous != nil {
			previousAxes, _ = services.PeriodAxes(db, companyID, previous.ID)
		}
	}

	priorScores, err := services.GetPriorScores(db, companyID, year, quarter, false)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load prior scores"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"year":         year,
		"quarter":      quarter,
		"axes":         axes,
		"previous":     previousAxes,
		"prior_scores": priorScores,
		"deltas":       services.ScoreDeltas(currentScores, priorScores),
	})
}

// ListPeriodsAPI lists the company's submitted quarters, newest first.
func ListPeriodsAPI(c *fiber.Ctx, db *sql.DB) error {
	companyID, err := auth.CompanyScope(c, c.Query("company_id"))
	if err != nil {
		return err
	}

	periods, err := database.GetPeriodsByCompany(db, companyID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load periods"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"periods": periods,
	})
}
