package academic

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Amiradha/Major-Project/app/database"
)

// The lookup endpoints feed the cascading dropdowns on the client. Each one
// resolves the program first and answers 400 for an unresolvable name; any
// other fault is logged and answered with a generic 500.

func resolveProgramParam(c *fiber.Ctx, store database.AcademicStore, handler string) (programID string, done bool, err error) {
	program, err := store.ActiveProgramByName(c.Query("program"))
	if err != nil {
		if err == database.ErrProgramNotFound || err == database.ErrProgramAmbiguous {
			return "", true, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Invalid program",
				"status": "error",
			})
		}
		log.Printf("Error in %s: %v", handler, err)
		return "", true, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "Internal server error",
			"status": "error",
		})
	}
	return program.ProgramID, false, nil
}

func internalError(c *fiber.Ctx, handler string, err error) error {
	log.Printf("Error in %s: %v", handler, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":  "Internal server error",
		"status": "error",
	})
}

// GetYearsAPI returns the academic years available for a program.
func GetYearsAPI(c *fiber.Ctx, store database.AcademicStore) error {
	programID, done, err := resolveProgramParam(c, store, "GetYearsAPI")
	if done {
		return err
	}

	years, err := store.YearsForProgram(programID)
	if err != nil {
		return internalError(c, "GetYearsAPI", err)
	}
	if years == nil {
		years = []int{}
	}

	return c.JSON(fiber.Map{
		"years":  years,
		"status": "success",
	})
}

// GetCoursesAPI returns the courses available for a program and year.
func GetCoursesAPI(c *fiber.Ctx, store database.AcademicStore) error {
	programID, done, err := resolveProgramParam(c, store, "GetCoursesAPI")
	if done {
		return err
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return internalError(c, "GetCoursesAPI", err)
	}

	courses, err := store.CoursesForProgramYear(programID, year)
	if err != nil {
		return internalError(c, "GetCoursesAPI", err)
	}
	if courses == nil {
		courses = []string{}
	}

	return c.JSON(fiber.Map{
		"courses": courses,
		"status":  "success",
	})
}

// GetComponentsAPI returns the evaluation components defined for a program
// and course.
func GetComponentsAPI(c *fiber.Ctx, store database.AcademicStore) error {
	programID, done, err := resolveProgramParam(c, store, "GetComponentsAPI")
	if done {
		return err
	}

	components, err := store.ComponentNames(programID, c.Query("course"))
	if err != nil {
		return internalError(c, "GetComponentsAPI", err)
	}
	if components == nil {
		components = []string{}
	}

	return c.JSON(fiber.Map{
		"components": components,
		"status":     "success",
	})
}
