package enrollment

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mira-academy/catalog/internal/models"
)

func testCourse(number, name string) models.Course {
	return models.Course{CourseNumber: models.Field(number), CourseName: models.Field(name)}
}

func TestEnrollAndDrop(t *testing.T) {
	s := NewStore(nil)

	s.Enroll(testCourse("WD1200", "Advanced"))
	require.Equal(t, 1, s.Count())
	assert.True(t, s.IsEnrolled("WD1200"))

	s.Drop("WD1200")
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.IsEnrolled("WD1200"))
}

func TestEnrollIdempotentFirstWins(t *testing.T) {
	s := NewStore(nil)

	s.Enroll(testCourse("WD1100", "Intro"))
	s.Enroll(testCourse("WD1100", "Renamed Intro"))

	require.Equal(t, 1, s.Count())
	enrolled := s.Enrolled()
	require.Len(t, enrolled, 1)
	assert.Equal(t, "Intro", enrolled[0].CourseName.String(), "re-enrolling must not overwrite the stored record")
}

func TestEnrollWithoutNumberIsNoOp(t *testing.T) {
	s := NewStore(nil)

	s.Enroll(testCourse("", "Mystery Course"))
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.IsEnrolled(""))
}

func TestDropAbsentIsNoOp(t *testing.T) {
	s := NewStore(nil)
	s.Enroll(testCourse("WD1100", "Intro"))

	s.Drop("WD9999")
	s.Drop("")
	assert.Equal(t, 1, s.Count())

	s.Drop("WD1100")
	s.Drop("WD1100")
	assert.Equal(t, 0, s.Count())
}

func TestEnrolledOrderStable(t *testing.T) {
	s := NewStore(nil)
	s.Enroll(testCourse("WD1200", "Advanced"))
	s.Enroll(testCourse("MA2100", "Calculus"))
	s.Enroll(testCourse("WD1100", "Intro"))

	first := s.Enrolled()
	second := s.Enrolled()
	require.Equal(t, first, second, "order must be stable across queries")

	got := make([]string, len(first))
	for i, c := range first {
		got[i] = c.CourseNumber.String()
	}
	assert.Equal(t, []string{"WD1200", "MA2100", "WD1100"}, got)

	s.Drop("MA2100")
	got = got[:0]
	for _, c := range s.Enrolled() {
		got = append(got, c.CourseNumber.String())
	}
	assert.Equal(t, []string{"WD1200", "WD1100"}, got)
}

func TestSubscribeNotifiesOncePerChange(t *testing.T) {
	s := NewStore(nil)
	notified := 0
	unsubscribe := s.Subscribe(func() { notified++ })

	s.Enroll(testCourse("WD1100", "Intro"))
	assert.Equal(t, 1, notified)

	s.Enroll(testCourse("WD1100", "Intro"))
	assert.Equal(t, 1, notified, "duplicate enroll must not notify")

	s.Drop("WD9999")
	assert.Equal(t, 1, notified, "absent drop must not notify")

	s.Drop("WD1100")
	assert.Equal(t, 2, notified)

	unsubscribe()
	s.Enroll(testCourse("WD1200", "Advanced"))
	assert.Equal(t, 2, notified, "unsubscribed listener must not fire")
}

func TestListenerMayQueryStore(t *testing.T) {
	s := NewStore(nil)
	var seen []int
	s.Subscribe(func() { seen = append(seen, s.Count()) })

	s.Enroll(testCourse("WD1100", "Intro"))
	s.Enroll(testCourse("WD1200", "Advanced"))
	s.Drop("WD1100")

	assert.Equal(t, []int{1, 2, 1}, seen, "listeners must observe the committed state")
}

func TestConcurrentEnrollDrop(t *testing.T) {
	s := NewStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				number := fmt.Sprintf("C%d", j%10)
				s.Enroll(testCourse(number, "Course"))
				if n%2 == 0 {
					s.Drop(number)
				}
				s.IsEnrolled(number)
				s.Enrolled()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, len(s.Enrolled()), s.Count())
	for _, c := range s.Enrolled() {
		assert.True(t, s.IsEnrolled(c.CourseNumber.String()))
	}
}
