package scoring

import (
	"fmt"

	"xinli/pkg/utils"
)

const CareerQuestionCount = 10

// FFMTraits lists the five-factor-model traits in scoring order. Item
// i and item i+5 measure the same trait, the first five items reversed.
var FFMTraits = [5]string{"开放性", "尽责性", "外向性", "宜人性", "神经质"}

// ScoreCareer aggregates 10 Likert answers (1-5) into five trait
// percentages and a 4-letter type code. The code comes from strict
// pairwise comparisons on the reversed-adjusted answers, so ties fall
// to the second letter of each pair (I, S, T, P) — the opposite
// direction from the personality scorer.
func ScoreCareer(answers []int) (*CareerResult, error) {
	if len(answers) != CareerQuestionCount {
		return nil, fmt.Errorf("%w: expected %d answers, got %d", utils.ErrInvalidInput, CareerQuestionCount, len(answers))
	}

	adjusted := make([]int, CareerQuestionCount)
	for i, v := range answers {
		if v < 1 || v > 5 {
			return nil, fmt.Errorf("%w: answer %d must be between 1 and 5, got %d", utils.ErrInvalidInput, i+1, v)
		}
		if i < 5 {
			adjusted[i] = 6 - v
		} else {
			adjusted[i] = v
		}
	}

	scores := make([]FFMScore, 0, len(FFMTraits))
	for i, trait := range FFMTraits {
		sum := adjusted[i] + adjusted[i+5]
		scores = append(scores, FFMScore{Trait: trait, Percentage: sum * 10})
	}

	code := ""
	code += pick(adjusted[2] > adjusted[7], "E", "I")
	code += pick(adjusted[0] > adjusted[5], "N", "S")
	code += pick(adjusted[3] > adjusted[8], "F", "T")
	code += pick(adjusted[1] > adjusted[6], "J", "P")

	return &CareerResult{FFMScores: scores, MBTIType: code}, nil
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

type careerMatch struct {
	typeName string
	careers  []string
}

// careerTypes maps each of the 16 type codes to its display name and
// recommended occupations.
var careerTypes = map[string]careerMatch{
	"ISTJ": {"检查员", []string{"会计师", "行政管理人员", "公务员", "金融分析师", "军官", "项目经理"}},
	"ISFJ": {"保护者", []string{"小学教师", "图书管理员", "护士", "药剂师", "社会工作者", "人力资源经理"}},
	"INFJ": {"咨询师", []string{"心理学家", "咨询师", "作家", "社会科学家", "设计师", "非营利组织经理"}},
	"INTJ": {"策划者", []string{"首席执行官", "科学家", "战略师", "IT经理", "建筑师", "投资银行家"}},
	"ISTP": {"手艺人", []string{"机械师", "飞行员", "法医科学家", "木匠", "运动员", "厨师"}},
	"ISFP": {"作曲家", []string{"艺术家", "音乐家", "厨师", "时装设计师", "摄影师", "公园管理员"}},
	"INFP": {"治愈者", []string{"作家", "艺术家", "咨询师", "社会工作者", "非营利组织经理", "心理学家"}},
	"INTP": {"建筑师", []string{"科学家", "建筑师", "软件开发工程师", "工程师", "数学家", "研究员"}},
	"ESTP": {"推销者", []string{"销售人员", "企业家", "运动员", "急救人员", "消防员", "警察"}},
	"ESFP": {"表演者", []string{"演员", "艺人", "销售人员", "公关专员", "活动策划师", "私人教练"}},
	"ENFP": {"优胜者", []string{"作家", "演员", "教师", "非营利组织经理", "市场营销经理", "心理学家"}},
	"ENTP": {"发明家", []string{"律师", "企业家", "发明家", "市场营销经理", "管理咨询师", "记者"}},
	"ESTJ": {"监督者", []string{"警察", "军官", "企业高管", "项目经理", "会计师", "金融分析师"}},
	"ESFJ": {"供给者", []string{"教师", "护士", "活动策划师", "公关专员", "客服代表", "人力资源经理"}},
	"ENFJ": {"教师", []string{"咨询师", "教师", "人力资源经理", "非营利组织经理", "销售经理", "活动策划师"}},
	"ENTJ": {"元帅", []string{"首席执行官", "企业家", "军官", "政治家", "投资银行家", "管理咨询师"}},
}
