package scoring

type mbtiTypeInfo struct {
	typeName    string
	epithet     string
	description string

	generalTraits []string
	strengths     []string
	tenRules      []string
}

// letterMeanings labels the eight preference letters for count charts.
var letterMeanings = map[string]string{
	"E": "Extroverted - 外向的",
	"I": "Introverted - 内向的",
	"S": "Sensing - 侧重现实",
	"N": "Intuitive - 侧重直觉",
	"T": "Thinking - 侧重逻辑思维",
	"F": "Feeling - 侧重情感",
	"J": "Judging - 善于判断",
	"P": "Perceiving - 善于接收",
}

var mbtiTypes = map[string]mbtiTypeInfo{
	"ISTJ": {
		typeName:    "检查员",
		epithet:     "严谨可靠的务实者",
		description: "ISTJ型的人安静、认真，以彻底和可靠赢得信任。他们讲求实际，注重事实，对自己承担的工作有强烈的责任感。",
		generalTraits: []string{"做事有条理、重视秩序", "忠于职责，言出必行", "依据事实和经验做判断", "偏好稳定明确的环境"},
		strengths:     []string{"执行力强，善始善终", "细节把控出色", "在压力下保持冷静"},
		tenRules: []string{"学会接纳计划之外的变化", "适时表达对他人的欣赏", "给新想法一个尝试的机会", "工作之余留出放松的时间", "不必事事追求完美"},
	},
	"ISFJ": {
		typeName:    "保护者",
		epithet:     "尽心尽力的守护者",
		description: "ISFJ型的人安静、友善、有责任心。他们乐于满足他人的需要，记得与自己有关的人的点滴，并愿意为之付出。",
		generalTraits: []string{"体贴周到，关注他人感受", "工作勤恳，值得托付", "重视传统与安全感", "不喜欢冲突与对抗"},
		strengths:     []string{"服务意识强", "观察入微，记忆力好", "耐心而稳定"},
		tenRules: []string{"学会对过度的请求说不", "把自己的需要也放在心上", "直接表达不满而非忍耐", "尝试接受变化带来的机会", "为自己的成绩感到自豪"},
	},
	"INFJ": {
		typeName:    "咨询师",
		epithet:     "富有洞察力的理想主义者",
		description: "INFJ型的人寻求思想、关系和物质之间的意义与联系。他们希望理解什么能够激励人，对他人有很强的洞察力。",
		generalTraits: []string{"直觉敏锐，洞察人心", "有坚定的价值观和信念", "追求深度而非广度的关系", "做事有计划且坚持到底"},
		strengths:     []string{"理解复杂的人际动态", "文字表达能力强", "富有远见"},
		tenRules: []string{"不要把批评都指向自己", "适当降低对他人的期待", "把想法说出来而非独自消化", "留意现实层面的细节", "接受不完美的结果"},
	},
	"INTJ": {
		typeName:    "策划者",
		epithet:     "独立的战略家",
		description: "INTJ型的人思维缜密，有独创性，对自己要实现的目标有清晰的蓝图，并能有条不紊地推进。",
		generalTraits: []string{"长于构建体系和长远规划", "独立自主，标准极高", "重视知识与能力", "对低效和冗余缺乏耐心"},
		strengths:     []string{"战略思维出众", "面对困难坚定自信", "快速把握复杂概念"},
		tenRules: []string{"倾听他人的情感诉求", "表达结论前先解释过程", "容许他人用自己的节奏成长", "别让完美主义拖慢行动", "认可团队协作的价值"},
	},
	"ISTP": {
		typeName:    "手艺人",
		epithet:     "冷静的问题解决者",
		description: "ISTP型的人灵活、宽容，是安静的观察者，一旦出现问题便迅速行动，寻找可行的解决办法。",
		generalTraits: []string{"动手能力强，喜欢研究事物原理", "冷静理性，随机应变", "崇尚效率与实用", "喜欢自由不受约束"},
		strengths:     []string{"危机处理能力强", "擅长使用工具与技术", "客观务实"},
		tenRules: []string{"对长期承诺多一点耐心", "主动分享自己的想法", "体察他人未说出口的感受", "坚持完成枯燥的收尾工作", "为未来做一些规划"},
	},
	"ISFP": {
		typeName:    "作曲家",
		epithet:     "温和的艺术家",
		description: "ISFP型的人安静、友善、敏感，欣赏当下的美好，喜欢拥有自己的空间并按自己的节奏工作。",
		generalTraits: []string{"审美敏锐，崇尚和谐", "忠于自己的价值观", "关怀他人，不愿强加于人", "活在当下，灵活随性"},
		strengths:     []string{"艺术感受力强", "与人为善，没有攻击性", "对环境变化适应快"},
		tenRules: []string{"学会接受建设性的批评", "为长远目标做些准备", "相信并展示自己的才华", "遇到冲突不要一味退让", "把感受适时说出来"},
	},
	"INFP": {
		typeName:    "治愈者",
		epithet:     "坚守理想的调停者",
		description: "INFP型的人理想主义，忠于自己的价值观和自己所重视的人，希望外部的生活与内心的价值协调一致。",
		generalTraits: []string{"内心世界丰富", "对他人的痛苦感同身受", "追求意义与成长", "适应力强但坚守原则"},
		strengths:     []string{"创造力和想象力突出", "善于理解与鼓励他人", "价值驱动，忠诚坚定"},
		tenRules: []string{"别把分歧等同于否定", "把理想拆解成可行的步骤", "接受现实中的不完美", "练习当面表达需求", "给自己的付出设定边界"},
	},
	"INTP": {
		typeName:    "建筑师",
		epithet:     "逻辑的探索者",
		description: "INTP型的人寻求为自己感兴趣的任何事物构建合乎逻辑的解释。他们更关注观念本身，安静而灵活。",
		generalTraits: []string{"理论思维强，喜爱抽象问题", "好奇心旺盛", "独立，凡事喜欢追问本质", "对细节和常规缺乏兴趣"},
		strengths:     []string{"分析问题一针见血", "知识面广且深", "面对复杂保持客观"},
		tenRules: []string{"把想法落地而非停在纸面", "留意谈话对象的情绪", "简化表达，照顾听众", "按时完成承诺的事项", "参与而不仅是旁观"},
	},
	"ESTP": {
		typeName:    "推销者",
		epithet:     "精力充沛的行动派",
		description: "ESTP型的人灵活、务实，注重立竿见影的结果。他们喜欢行动起来解决问题，享受与他人共处的每个当下。",
		generalTraits: []string{"反应敏捷，敢于冒险", "现实感强，讲求实效", "健谈幽默，富有感染力", "讨厌理论化的长篇大论"},
		strengths:     []string{"应变与谈判能力强", "观察敏锐，抓住要点", "带动气氛的天然能力"},
		tenRules: []string{"行动之前多想一步后果", "兑现对他人的承诺", "耐心听完别人的想法", "为重要目标保持专注", "照顾长期伙伴的感受"},
	},
	"ESFP": {
		typeName:    "表演者",
		epithet:     "热情洋溢的开心果",
		description: "ESFP型的人外向、友好、乐于接受。他们热爱生活与人群，喜欢与他人一起让事情变得有趣。",
		generalTraits: []string{"乐观开朗，富有热情", "重视感官体验与乐趣", "乐于助人，灵活合群", "计划性较弱，随遇而安"},
		strengths:     []string{"人际魅力突出", "务实的常识判断", "让团队保持愉快氛围"},
		tenRules: []string{"给重要事务留出计划", "学会面对不愉快的信息", "坚持完成已开始的事情", "为未来储蓄资源", "独处时也能安顿自己"},
	},
	"ENFP": {
		typeName:    "优胜者",
		epithet:     "热情的可能性发现者",
		description: "ENFP型的人热情洋溢、富于想象，认为人生充满各种可能。他们能很快将信息和事件联系起来，并自信地行动。",
		generalTraits: []string{"创意不断，兴趣广泛", "感染力强，善于激励", "重视真诚的关系", "讨厌重复与束缚"},
		strengths:     []string{"沟通与共情能力强", "发现他人潜力", "在变化中如鱼得水"},
		tenRules: []string{"筛选值得投入的想法", "把项目坚持做完", "留意生活中的细节事务", "批评并不总是针对你", "给自己安静思考的时间"},
	},
	"ENTP": {
		typeName:    "发明家",
		epithet:     "机敏的挑战者",
		description: "ENTP型的人反应敏捷、睿智，长于解决新颖而具有挑战性的问题，能提出概念上的可能性并进行战略分析。",
		generalTraits: []string{"思维跳跃，辩才出众", "喜欢挑战常规", "多才多艺，兴趣多变", "厌倦例行公事"},
		strengths:     []string{"创新能力强", "快速理解复杂系统", "在辩论中发现盲点"},
		tenRules: []string{"选定方向后持续深耕", "照顾他人的自尊心", "把细节执行当回事", "承诺之前量力而行", "倾听比说服更重要"},
	},
	"ESTJ": {
		typeName:    "监督者",
		epithet:     "果断的管理者",
		description: "ESTJ型的人讲求实际、注重现实，果断而迅速地执行决定。他们善于组织项目和人员，把事情办成。",
		generalTraits: []string{"组织管理能力强", "重视规则与秩序", "直率坦诚，立场鲜明", "以结果衡量价值"},
		strengths:     []string{"高效的执行与调度", "敢于承担责任", "标准清晰，赏罚分明"},
		tenRules: []string{"倾听不同意见再下结论", "认可他人的情感需求", "对变化保持开放", "放权给值得信任的人", "劳逸结合，善待自己"},
	},
	"ESFJ": {
		typeName:    "供给者",
		epithet:     "热心肠的协调者",
		description: "ESFJ型的人热心、尽责、乐于合作。他们希望周围的环境温馨和谐，并为此坚定地付出。",
		generalTraits: []string{"热情好客，乐于服务", "重视和谐与归属感", "做事尽责且有条理", "在意他人的评价"},
		strengths:     []string{"组织活动的好手", "敏锐察觉他人需要", "忠诚可靠"},
		tenRules: []string{"不必让所有人都满意", "把批评当作信息而非否定", "给自己留一些时间", "接受他人不同的做事方式", "直面必要的冲突"},
	},
	"ENFJ": {
		typeName:    "教师",
		epithet:     "鼓舞人心的引导者",
		description: "ENFJ型的人热情、为他人着想、反应敏捷。他们十分关注别人的需要，善于发现他人的潜能并帮助其发挥。",
		generalTraits: []string{"天生的组织者与引导者", "善解人意，乐于成人之美", "口才出色，富有感召力", "对批评与冷漠敏感"},
		strengths:     []string{"激励并凝聚团队", "沟通表达流畅", "对他人成长有耐心"},
		tenRules: []string{"留意自己真实的需要", "接受无法帮到所有人的事实", "批评他人时不必过度内疚", "决策时兼顾客观数据", "给自己独处充电的机会"},
	},
	"ENTJ": {
		typeName:    "元帅",
		epithet:     "天生的领导者",
		description: "ENTJ型的人坦率、果断，天生具有领导能力。他们能迅速发现低效的程序和政策，并建立全面的体系解决问题。",
		generalTraits: []string{"目标导向，雷厉风行", "长于规划与统筹", "自信直言，不惧对抗", "对低效零容忍"},
		strengths:     []string{"把握全局的战略眼光", "决策果断", "带领团队达成目标"},
		tenRules: []string{"放慢语速，听完再说", "认可感受也是事实", "给他人试错的空间", "胜负之外还有关系", "定期反思自己的盲点"},
	},
}
