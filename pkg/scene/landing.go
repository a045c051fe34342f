// Package scene ships ready-made scenes.
package scene

import (
	"fmt"

	"github.com/aretw0/stagger/pkg/adapters/memory"
	"github.com/aretw0/stagger/pkg/dsl"
	"github.com/aretw0/stagger/pkg/domain"
)

// LandingIcons is the number of social icons that slide in next to the divider.
const LandingIcons = 7

// Landing describes the portfolio landing page: the title scales in, the subtitle
// drops in after it, the divider grows after the subtitle, then the summary and
// the icons follow the divider at staggered points of its progress.
func Landing() []domain.NodeSpec {
	return landingBuilder().Specs()
}

// LandingLoader returns the landing scene as a ports.SceneLoader.
func LandingLoader() (*memory.Loader, error) {
	return landingBuilder().Build()
}

func landingBuilder() *dsl.Builder {
	b := dsl.New()
	b.Add("mainTitle")
	b.Add("subTitle").After("mainTitle")
	b.Add("divider").After("subTitle")
	b.Add("summary").After("divider").At(0.55)

	for i := 1; i <= LandingIcons; i++ {
		b.Add(IconKey(i)).After("divider").At(IconThreshold(i))
	}
	return b
}

// IconKey returns the key of the i-th icon, starting at 1.
func IconKey(i int) string {
	return fmt.Sprintf("icon%d", i)
}

// IconThreshold is the divider progress at which the i-th icon starts.
func IconThreshold(i int) float64 {
	return 0.14*float64(i) - 0.05
}

// LandingViews returns the content tabs of the landing page, home first.
func LandingViews() []string {
	return []string{domain.DefaultView, "projects", "resume", "contact"}
}
