package usecase

import (
	"fmt"
	"testing"
	"time"

	"medshift-scheduler/internal/domain/entity"
	"medshift-scheduler/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNumberRepo struct {
	repository.EmployeeRepository
	taken map[string]bool
}

func (f *fakeNumberRepo) FindByNumber(db *gorm.DB, number string) (*entity.Employee, error) {
	if f.taken[number] {
		return &entity.Employee{EmployeeNumber: number}, nil
	}
	return nil, nil
}

func TestNextEmployeeNumberFirstOfDay(t *testing.T) {
	u := &employeeUsecase{log: logrus.New(), employeeRepo: &fakeNumberRepo{taken: map[string]bool{}}}

	number, err := u.nextEmployeeNumber(nil)
	require.NoError(t, err)
	assert.Equal(t, "EMP-"+time.Now().Format("20060102")+"-001", number)
}

func TestNextEmployeeNumberSkipsTaken(t *testing.T) {
	prefix := "EMP-" + time.Now().Format("20060102")
	u := &employeeUsecase{log: logrus.New(), employeeRepo: &fakeNumberRepo{taken: map[string]bool{
		prefix + "-001": true,
		prefix + "-002": true,
	}}}

	number, err := u.nextEmployeeNumber(nil)
	require.NoError(t, err)
	assert.Equal(t, prefix+"-003", number)
}

func TestNextEmployeeNumberExhausted(t *testing.T) {
	prefix := "EMP-" + time.Now().Format("20060102")
	taken := make(map[string]bool, 999)
	for seq := 1; seq <= 999; seq++ {
		taken[fmt.Sprintf("%s-%03d", prefix, seq)] = true
	}
	u := &employeeUsecase{log: logrus.New(), employeeRepo: &fakeNumberRepo{taken: taken}}

	_, err := u.nextEmployeeNumber(nil)
	assert.Error(t, err)
}
