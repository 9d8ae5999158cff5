package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"certification-api/wizard"
)

// GetWizardSteps exposes the static step/substep table the sidebar and
// progress bar render from.
func GetWizardSteps(c *gin.Context) {
	steps := make([]gin.H, 0, wizard.MaxMainStep)
	for i, title := range wizard.StepTitles {
		step := i + 1
		steps = append(steps, gin.H{
			"step":     step,
			"title":    title,
			"substeps": wizard.SubstepTitles[step],
		})
	}
	c.JSON(http.StatusOK, gin.H{"steps": steps})
}

// GetGuidance returns the contextual help record for one wizard position.
func GetGuidance(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid step"})
		return
	}
	substep, err := strconv.Atoi(c.Param("substep"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid substep"})
		return
	}

	g, ok := wizard.GuidanceFor(step, substep)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No guidance for that position"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"guidance": g})
}
